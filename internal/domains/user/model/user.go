package model

const (
	TableName  = "usuarios"
	EntityName = "user"

	FieldEmail        = "email"
	FieldUserName     = "user_name"
	FieldPasswordHash = "password_hash"
)

// User is a registered account. Email is the primary key; there is no
// surrogate id.
type User struct {
	Email        string `db:"email"`
	UserName     string `db:"user_name"`
	PasswordHash string `db:"password_hash"`
}
