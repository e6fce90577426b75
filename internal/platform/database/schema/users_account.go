package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table          string
	ID             string
	Email          string
	Salt           string
	HashedPassword string
	CreatedAt      string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:          "users.account",
	ID:             "id",
	Email:          "email",
	Salt:           "salt",
	HashedPassword: "hashedpassword",
	CreatedAt:      "createdat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Email, t.Salt, t.HashedPassword, t.CreatedAt}
}
