package services

// ServiceContainer holds all service facades for handler wiring.
type ServiceContainer struct {
	Banking  BankingSvcFacade
	Account  AccountSvcFacade
	Customer CustomerSvcFacade
	Payee    PayeeSvcFacade
	BillPay  BillPaySvcFacade
	Token    TokenSvcFacade
}
