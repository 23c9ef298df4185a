package models

// User mirrors a row of the users table.
type User struct {
	UserID      int64  `db:"user_id"`
	UserName    string `db:"user_name"`
	UserEmail   string `db:"user_email"`
	UserPwdHash string `db:"user_pwd_hash"`
}
