package models

// Header is the ordered list of column names written to row 1.
type Header []string

// DefaultHeader returns the user table header.
func DefaultHeader() Header {
	return Header{"name", "username", "password"}
}

// Record is one user row.
type Record struct {
	// Name is the display name (column 1).
	Name string `json:"name" yaml:"name"`
	// Username is the login name (column 2).
	Username string `json:"username" yaml:"username"`
	// Password is stored as given, or as a bcrypt hash in bcrypt mode (column 3).
	Password string `json:"password" yaml:"password"`
}

// Values returns the record fields in header column order.
func (r Record) Values() []string {
	return []string{r.Name, r.Username, r.Password}
}

// DefaultRecords returns the sample users written when no records are configured.
func DefaultRecords() []Record {
	return []Record{
		{Name: "Alice Smith", Username: "asmith", Password: "password123"},
		{Name: "Bob Johnson", Username: "bjohnson", Password: "securepass456"},
		{Name: "Charlie Brown", Username: "cbrown", Password: "mypassword789"},
	}
}
