package domain

// PersonData is the normalized person record returned by a NIN provider.
type PersonData struct {
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	PhoneNumber string `json:"phoneNumber"`
	BirthDate   string `json:"birthdate,omitempty"`
	BirthLGA    string `json:"birthlga,omitempty"`
	BirthState  string `json:"birthstate,omitempty"`
	TrackingID  string `json:"trackingId,omitempty"`
}

// CompanyData is the normalized company record returned by a CAC provider.
type CompanyData struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber"`
	CompanyStatus      string `json:"companyStatus"`
	RegistrationDate   string `json:"registrationDate"`
	TypeOfEntity       string `json:"typeOfEntity"`
}
