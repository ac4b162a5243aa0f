package mail

import "fmt"

// CredentialsBody renders the welcome email carrying a new employer's generated
// login credentials.
func CredentialsBody(fullName, email, password string) string {
	return fmt.Sprintf(`Hello %s,

Your account has been created on the IT asset management platform.

You can sign in with the following credentials:

  Email:    %s
  Password: %s

Please change your password after your first login.

IT Department`, fullName, email, password)
}

const CredentialsSubject = "Your account credentials"
