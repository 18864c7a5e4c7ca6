package entity

type Admin struct {
	Base
	Username     string `db:"username"`
	PasswordHash string `db:"password"`
	FullName     string `db:"full_name"`
}
