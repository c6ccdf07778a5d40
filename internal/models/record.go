package models

// Record is a DynHost record to keep pointing to the public IP address.
type Record struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Hostname string `json:"hostname"`
}

func (r Record) String() string {
	return "[hostname: " + r.Hostname + " | username: " + r.Username + "]"
}
