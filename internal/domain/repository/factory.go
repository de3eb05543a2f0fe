package repository

// Factory describes access to the domain repositories.
type Factory interface {
	Accounts() AccountRepository
	Orders() OrderRepository
}
