// Package matcher compares the record returned by a verification provider
// with the data submitted for the same identity. Values from both sides are
// normalized before comparison so formatting differences (case, spacing,
// company suffixes, date layouts, phone prefixes) do not cause mismatches.
package matcher

import (
	"idverify/pkg/domain"
	"strings"
)

// Field labels reported in Result.FailedFields.
const (
	LabelFirstName          = "First Name"
	LabelLastName           = "Last Name"
	LabelGender             = "Gender"
	LabelDateOfBirth        = "Date of Birth"
	LabelPhoneNumber        = "Phone Number"
	LabelCompanyName        = "Company Name"
	LabelRegistrationNumber = "Registration Number"
	LabelRegistrationDate   = "Registration Date"
	LabelCompanyStatus      = "Company Status"
)

// Submitted data keys accepted for each field, in lookup order.
//
//nolint: gochecknoglobals
var (
	firstNameKeys   = []string{"firstName", "First Name", "first name"}
	lastNameKeys    = []string{"lastName", "Last Name", "last name"}
	genderKeys      = []string{"gender", "Gender"}
	dateOfBirthKeys = []string{"dateOfBirth", "Date of Birth", "date of birth", "DOB"}
	phoneKeys       = []string{"phoneNumber", "Phone Number", "phone number"}
	companyNameKeys = []string{"companyName", "Company Name", "company name", "name", "Name"}
	regNumberKeys   = []string{
		"registrationNumber", "Registration Number", "registration number",
		"rcNumber", "RC Number", "rc number", "cac", "CAC",
	}
	regDateKeys = []string{"registrationDate", "Registration Date", "registration date"}
)

// ActiveCompanyStatuses are the provider company statuses accepted as valid.
var ActiveCompanyStatuses = []string{"verified", "active"} //nolint: gochecknoglobals

// FieldResult is the comparison outcome of a single field.
type FieldResult struct {
	Label          string `json:"label"`
	APIValue       string `json:"api"`
	SubmittedValue string `json:"submitted"`
	Matched        bool   `json:"matched"`
	// ParsedAPI and ParsedSubmitted hold canonical dates; nil when unparsable.
	ParsedAPI       *string `json:"apiParsed,omitempty"`
	ParsedSubmitted *string `json:"submittedParsed,omitempty"`
	// Optional fields never fail the aggregate match.
	Optional bool `json:"optional,omitempty"`
}

// Result is the aggregate comparison outcome.
type Result struct {
	Matched      bool                   `json:"matched"`
	FailedFields []string               `json:"failedFields"`
	Fields       map[string]FieldResult `json:"details"`
}

type builder struct {
	res Result
}

func newBuilder() *builder {
	return &builder{res: Result{FailedFields: []string{}, Fields: map[string]FieldResult{}}}
}

func (b *builder) add(key string, f FieldResult) {
	b.res.Fields[key] = f
	if !f.Matched && !f.Optional {
		b.res.FailedFields = append(b.res.FailedFields, f.Label)
	}
}

func (b *builder) result() Result {
	b.res.Matched = len(b.res.FailedFields) == 0

	return b.res
}

// MatchPerson compares a provider person record with submitted data. First
// name, last name, gender and date of birth are required; the phone number is
// reported but never fails the match.
func MatchPerson(api domain.PersonData, submitted map[string]string) Result {
	b := newBuilder()

	b.add("firstName", compare(LabelFirstName, api.FirstName, lookup(submitted, firstNameKeys), NormalizeString))
	b.add("lastName", compare(LabelLastName, api.LastName, lookup(submitted, lastNameKeys), NormalizeString))
	b.add("gender", compare(LabelGender, api.Gender, lookup(submitted, genderKeys), NormalizeGender))
	b.add("dateOfBirth", compareDates(LabelDateOfBirth, api.DateOfBirth, lookup(submitted, dateOfBirthKeys)))

	phone := compare(LabelPhoneNumber, api.PhoneNumber, lookup(submitted, phoneKeys), NormalizePhone)
	phone.Optional = true
	b.add("phoneNumber", phone)

	return b.result()
}

// MatchCompany compares a provider company record with submitted data. The
// company status is checked against ActiveCompanyStatuses instead of the
// submission.
func MatchCompany(api domain.CompanyData, submitted map[string]string) Result {
	b := newBuilder()

	b.add("companyName",
		compare(LabelCompanyName, api.Name, lookup(submitted, companyNameKeys), NormalizeCompanyName))
	b.add("registrationNumber",
		compare(LabelRegistrationNumber, api.RegistrationNumber, lookup(submitted, regNumberKeys), NormalizeIdentityNumber))
	b.add("registrationDate",
		compareDates(LabelRegistrationDate, api.RegistrationDate, lookup(submitted, regDateKeys)))

	status := NormalizeString(api.CompanyStatus)
	active := false
	for _, s := range ActiveCompanyStatuses {
		if status == s {
			active = true

			break
		}
	}
	b.add("companyStatus", FieldResult{
		Label:          LabelCompanyStatus,
		APIValue:       api.CompanyStatus,
		SubmittedValue: "N/A (validated against CAC)",
		Matched:        active,
	})

	return b.result()
}

func compare(label, api, submitted string, normalize func(string) string) FieldResult {
	return FieldResult{
		Label:          label,
		APIValue:       api,
		SubmittedValue: submitted,
		Matched:        normalize(api) == normalize(submitted),
	}
}

func compareDates(label, api, submitted string) FieldResult {
	f := FieldResult{Label: label, APIValue: api, SubmittedValue: submitted}
	a, aok := ParseDate(api)
	s, sok := ParseDate(submitted)
	if aok {
		f.ParsedAPI = &a
	}
	if sok {
		f.ParsedSubmitted = &s
	}
	f.Matched = aok && sok && a == s

	return f
}

func lookup(data map[string]string, keys []string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(data[k]); v != "" {
			return data[k]
		}
	}

	return ""
}
