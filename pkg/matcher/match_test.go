package matcher_test

import (
	"idverify/pkg/domain"
	"idverify/pkg/matcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchPerson(t *testing.T) {
	api := domain.PersonData{
		FirstName:   "JOHN",
		LastName:    "DOE",
		Gender:      "M",
		DateOfBirth: "12-May-1969",
		PhoneNumber: "2348012345678",
	}

	t.Run("all fields match across aliases and formats", func(t *testing.T) {
		res := matcher.MatchPerson(api, map[string]string{
			"First Name":    " john ",
			"last name":     "Doe",
			"Gender":        "male",
			"Date of Birth": "12/05/1969",
			"Phone Number":  "0801 234 5678",
		})
		require.True(t, res.Matched)
		require.Empty(t, res.FailedFields)
		require.Equal(t, "1969-05-12", *res.Fields["dateOfBirth"].ParsedAPI)
	})

	t.Run("failed fields keep field order", func(t *testing.T) {
		res := matcher.MatchPerson(api, map[string]string{
			"firstName": "Jane",
			"lastName":  "DOE",
			"gender":    "F",
			"DOB":       "1969-05-12",
		})
		require.False(t, res.Matched)
		require.Equal(t, []string{matcher.LabelFirstName, matcher.LabelGender}, res.FailedFields)
	})

	t.Run("phone mismatch is optional", func(t *testing.T) {
		res := matcher.MatchPerson(api, map[string]string{
			"firstName": "john", "lastName": "doe", "gender": "m", "dateOfBirth": "1969/05/12",
			"phoneNumber": "09099999999",
		})
		require.True(t, res.Matched)
		require.False(t, res.Fields["phoneNumber"].Matched)
		require.True(t, res.Fields["phoneNumber"].Optional)
	})

	t.Run("unparsable dates never match", func(t *testing.T) {
		res := matcher.MatchPerson(domain.PersonData{FirstName: "a", LastName: "b", Gender: "m", DateOfBirth: "unknown"},
			map[string]string{"firstName": "a", "lastName": "b", "gender": "m", "dateOfBirth": "unknown"})
		require.False(t, res.Matched)
		require.Equal(t, []string{matcher.LabelDateOfBirth}, res.FailedFields)
		require.Nil(t, res.Fields["dateOfBirth"].ParsedAPI)
		require.Nil(t, res.Fields["dateOfBirth"].ParsedSubmitted)
	})
}

func TestMatchCompany(t *testing.T) {
	api := domain.CompanyData{
		Name:               "ACME NIGERIA LIMITED",
		RegistrationNumber: "RC123456",
		CompanyStatus:      "Verified",
		RegistrationDate:   "2010-03-15",
	}

	t.Run("matches", func(t *testing.T) {
		res := matcher.MatchCompany(api, map[string]string{
			"Company Name":      "Acme Nigeria Ltd.",
			"RC Number":         "rc-123456",
			"Registration Date": "15/03/2010",
		})
		require.True(t, res.Matched, "failed: %v", res.FailedFields)
	})

	t.Run("inactive status and wrong number", func(t *testing.T) {
		inactive := api
		inactive.CompanyStatus = "Struck Off"
		res := matcher.MatchCompany(inactive, map[string]string{
			"companyName":      "acme nigeria ltd",
			"cac":              "654321",
			"registrationDate": "2010/03/15",
		})
		require.False(t, res.Matched)
		require.Equal(t, []string{matcher.LabelRegistrationNumber, matcher.LabelCompanyStatus}, res.FailedFields)
	})

	t.Run("active status accepted", func(t *testing.T) {
		active := api
		active.CompanyStatus = " ACTIVE "
		res := matcher.MatchCompany(active, map[string]string{
			"name": "Acme Nigeria Limited", "rcNumber": "123456", "registration date": "15-Mar-2010",
		})
		require.True(t, res.Matched)
	})
}
