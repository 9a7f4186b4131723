// Static fixture data for the bdjobs test suite. Values are fixed at load
// time and never mutated; the real test account comes from the environment.
package testdata

import "os"

// Credentials is a login credential record.
type Credentials struct {
	Email    string
	Password string
}

// Registrant holds the full set of registration form fields.
type Registrant struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Mobile          string
	Gender          string
	AcceptTerms     bool
}

var (
	ValidUser = Credentials{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	InvalidUser = Credentials{
		Email:    "invalid@example.com",
		Password: "wrongpassword",
	}

	NewUser = Registrant{
		Name:            "Test User",
		Email:           "newuser@example.com",
		Password:        "NewUser123!",
		ConfirmPassword: "NewUser123!",
		Mobile:          "01700000000",
		Gender:          "M",
		AcceptTerms:     true,
	}

	SearchTerms = []string{
		"Software Engineer",
		"Project Manager",
		"Marketing Executive",
		"HR Manager",
		"Data Analyst",
	}

	Locations = []string{
		"Dhaka",
		"Chittagong",
		"Sylhet",
		"Rajshahi",
		"Khulna",
	}

	JobCategories = []string{
		"IT/Telecommunication",
		"Bank/Financial Institution",
		"Marketing/Sales",
		"NGO/Development",
		"Engineering",
	}
)

// ValidAccount returns the real test account from BDJOBS_EMAIL and
// BDJOBS_PASSWORD when set, falling back to the static ValidUser fixture.
func ValidAccount() Credentials {
	creds := ValidUser
	if email := os.Getenv("BDJOBS_EMAIL"); email != "" {
		creds.Email = email
	}
	if password := os.Getenv("BDJOBS_PASSWORD"); password != "" {
		creds.Password = password
	}
	return creds
}
