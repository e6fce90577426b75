package schema

// UserSessionTable represents the 'users.session' table
type UserSessionTable struct {
	Table          string
	ID             string
	UserEmail      string
	AccessToken    string
	CreatedAt      string
	ExpirationTime string
}

// UserSession is the schema definition for users.session
var UserSession = UserSessionTable{
	Table:          "users.session",
	ID:             "id",
	UserEmail:      "useremail",
	AccessToken:    "accesstoken",
	CreatedAt:      "createdat",
	ExpirationTime: "expirationtime",
}

// Columns returns all standard column names
func (t UserSessionTable) Columns() []string {
	return []string{t.ID, t.UserEmail, t.AccessToken, t.CreatedAt, t.ExpirationTime}
}
