package ports

// Credential selects the key that authorizes a call to the hosted backend.
//
// The zero value is the anonymous (public) key. A non-empty Token forwards the
// end user's session so row-level security applies to them. Privileged calls
// use the server-held service key and bypass row-level security.
type Credential struct {
	Token      string
	Privileged bool
}

// Anonymous returns the public credential.
func Anonymous() Credential { return Credential{} }

// AsUser forwards an end-user session token. An empty token is anonymous.
func AsUser(token string) Credential { return Credential{Token: token} }

// AsService selects the privileged server credential.
func AsService() Credential { return Credential{Privileged: true} }
