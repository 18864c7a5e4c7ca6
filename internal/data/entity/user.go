package entity

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeMerchant UserType = "merchant"
)

type User struct {
	Base
	Username string   `db:"username"`
	FullName *string  `db:"full_name"`
	Email    *string  `db:"email"`
	Phone    *string  `db:"phone"`
	UserType UserType `db:"user_type"`
}

// UserWithCounts is the listing projection: user row plus how many stores
// it owns and orders it placed.
type UserWithCounts struct {
	User
	StoreCount int64
	OrderCount int64
}
