package v1handler

import (
	"idverify/internal/dedup"
	"idverify/internal/verifier"
	"idverify/pkg/domain"
	"idverify/pkg/matcher"
	"idverify/pkg/ratelimit"
	"idverify/pkg/verification"
	"net/http"
	"slices"
	"time"

	"github.com/go-faster/jx"
)

func writeJSON(w http.ResponseWriter, status int, fn func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	fn(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func encodeTime(e *jx.Encoder, t time.Time) {
	if t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func encodeStrings(e *jx.Encoder, ss []string) {
	e.ArrStart()
	for _, s := range ss {
		e.Str(s)
	}
	e.ArrEnd()
}

func encodeStringMap(e *jx.Encoder, m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	e.ObjStart()
	for _, k := range keys {
		e.FieldStart(k)
		e.Str(m[k])
	}
	e.ObjEnd()
}

func optStr(e *jx.Encoder, name, v string) {
	if v != "" {
		e.FieldStart(name)
		e.Str(v)
	}
}

func encodeError(e *jx.Encoder, v Error) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(v.Code)
	e.FieldStart("message")
	e.Str(v.Message)
	if len(v.FailedFields) > 0 {
		e.FieldStart("failedFields")
		encodeStrings(e, v.FailedFields)
	}
	if v.Match != nil {
		e.FieldStart("match")
		encodeMatch(e, *v.Match)
	}
	e.ObjEnd()
}

// encodeEntry never writes identity values, encrypted or not; only the
// identity types present on the entry.
func encodeEntry(e *jx.Encoder, v *domain.IdentityEntry) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(v.ID.String())
	e.FieldStart("listId")
	e.Str(v.ListID.String())
	e.FieldStart("status")
	e.Str(string(v.Status))

	e.FieldStart("identityTypes")
	e.ArrStart()
	for _, t := range domain.IdentityTypes {
		if _, ok := v.Identity(t); ok {
			e.Str(string(t))
		}
	}
	e.ArrEnd()

	if len(v.Data) > 0 {
		e.FieldStart("data")
		encodeStringMap(e, v.Data)
	}
	if !v.VerifiedAt.IsZero() {
		e.FieldStart("verifiedAt")
		encodeTime(e, v.VerifiedAt)
	}
	optStr(e, "verifiedBy", v.VerifiedBy)
	if len(v.VerificationResult) > 0 {
		e.FieldStart("verificationResult")
		e.Raw(v.VerificationResult)
	}
	if v.Duplicate != nil {
		e.FieldStart("duplicate")
		encodeVerdict(e, *v.Duplicate)
	}
	optStr(e, "lastError", v.LastError)
	e.FieldStart("createdAt")
	encodeTime(e, v.CreatedAt)
	e.FieldStart("updatedAt")
	encodeTime(e, v.UpdatedAt)
	e.ObjEnd()
}

func encodeEntries(e *jx.Encoder, entries []domain.IdentityEntry, nextCursor *string) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for i := range entries {
		encodeEntry(e, &entries[i])
	}
	e.ArrEnd()
	if nextCursor != nil {
		e.FieldStart("nextCursor")
		if *nextCursor == "" {
			e.Null()
		} else {
			e.Str(*nextCursor)
		}
	}
	e.ObjEnd()
}

func encodeVerdict(e *jx.Encoder, v domain.DuplicateVerdict) {
	e.ObjStart()
	e.FieldStart("isDuplicate")
	e.Bool(v.IsDuplicate)

	e.FieldStart("originalListId")
	if v.OriginalListID != nil {
		e.Str(v.OriginalListID.String())
	} else {
		e.Null()
	}
	e.FieldStart("originalEntryId")
	if v.OriginalEntryID != nil {
		e.Str(v.OriginalEntryID.String())
	} else {
		e.Null()
	}
	e.FieldStart("originalVerificationDate")
	if v.OriginalVerificationDate != nil {
		encodeTime(e, *v.OriginalVerificationDate)
	} else {
		e.Null()
	}
	optStr(e, "originalBroker", v.OriginalBroker)
	if len(v.OriginalResult) > 0 {
		e.FieldStart("originalResult")
		e.Raw(v.OriginalResult)
	}
	e.ObjEnd()
}

func encodePerson(e *jx.Encoder, p *domain.PersonData) {
	e.ObjStart()
	e.FieldStart("firstName")
	e.Str(p.FirstName)
	e.FieldStart("middleName")
	e.Str(p.MiddleName)
	e.FieldStart("lastName")
	e.Str(p.LastName)
	e.FieldStart("gender")
	e.Str(p.Gender)
	e.FieldStart("dateOfBirth")
	e.Str(p.DateOfBirth)
	e.FieldStart("phoneNumber")
	e.Str(p.PhoneNumber)
	optStr(e, "birthdate", p.BirthDate)
	optStr(e, "birthlga", p.BirthLGA)
	optStr(e, "birthstate", p.BirthState)
	optStr(e, "trackingId", p.TrackingID)
	e.ObjEnd()
}

func encodeCompany(e *jx.Encoder, c *domain.CompanyData) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(c.Name)
	e.FieldStart("registrationNumber")
	e.Str(c.RegistrationNumber)
	e.FieldStart("companyStatus")
	e.Str(c.CompanyStatus)
	e.FieldStart("registrationDate")
	e.Str(c.RegistrationDate)
	e.FieldStart("typeOfEntity")
	e.Str(c.TypeOfEntity)
	e.ObjEnd()
}

func encodeResponseInfo(e *jx.Encoder, ri verification.ResponseInfo) {
	e.ObjStart()
	optStr(e, "responseCode", ri.Code)
	optStr(e, "message", ri.Message)
	optStr(e, "parameter", ri.Parameter)
	optStr(e, "source", ri.Source)
	optStr(e, "timestamp", ri.Timestamp)
	e.ObjEnd()
}

func encodeOutcome(e *jx.Encoder, o *verifier.Outcome) {
	res := o.Result

	e.ObjStart()
	e.FieldStart("provider")
	e.Str(res.Provider)
	e.FieldStart("data")
	switch {
	case res.Person != nil:
		encodePerson(e, res.Person)
	case res.Company != nil:
		encodeCompany(e, res.Company)
	default:
		e.Null()
	}
	e.FieldStart("responseInfo")
	encodeResponseInfo(e, res.ResponseInfo)
	e.FieldStart("attempts")
	e.Int(res.Attempts)
	if o.Match != nil {
		e.FieldStart("match")
		encodeMatch(e, *o.Match)
	}
	e.ObjEnd()
}

func encodeMatch(e *jx.Encoder, m matcher.Result) {
	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	e.ObjStart()
	e.FieldStart("matched")
	e.Bool(m.Matched)
	e.FieldStart("failedFields")
	encodeStrings(e, m.FailedFields)
	e.FieldStart("details")
	e.ObjStart()
	for _, k := range keys {
		f := m.Fields[k]
		e.FieldStart(k)
		e.ObjStart()
		e.FieldStart("label")
		e.Str(f.Label)
		e.FieldStart("api")
		e.Str(f.APIValue)
		e.FieldStart("submitted")
		e.Str(f.SubmittedValue)
		e.FieldStart("matched")
		e.Bool(f.Matched)
		if f.ParsedAPI != nil {
			e.FieldStart("apiParsed")
			e.Str(*f.ParsedAPI)
		}
		if f.ParsedSubmitted != nil {
			e.FieldStart("submittedParsed")
			e.Str(*f.ParsedSubmitted)
		}
		if f.Optional {
			e.FieldStart("optional")
			e.Bool(true)
		}
		e.ObjEnd()
	}
	e.ObjEnd()
	e.ObjEnd()
}

func encodeStats(e *jx.Encoder, s dedup.Stats) {
	e.ObjStart()
	e.FieldStart("totalEntries")
	e.Int(s.TotalEntries)
	e.FieldStart("validEntries")
	e.Int(s.ValidEntries)
	e.FieldStart("expiredEntries")
	e.Int(s.ExpiredEntries)
	e.FieldStart("maxSize")
	e.Int(s.MaxSize)
	e.FieldStart("ttlMs")
	e.Int64(s.TTLMillis)
	e.ObjEnd()
}

func encodeUsage(e *jx.Encoder, rows []domain.UsageRecord) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for _, r := range rows {
		e.ObjStart()
		e.FieldStart("provider")
		e.Str(r.Provider)
		e.FieldStart("day")
		e.Str(r.Day.Format(time.DateOnly))
		e.FieldStart("total")
		e.Int64(r.Total)
		e.FieldStart("success")
		e.Int64(r.Success)
		e.FieldStart("failed")
		e.Int64(r.Failed)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeLimiterStatus(e *jx.Encoder, s ratelimit.Status) {
	e.ObjStart()
	e.FieldStart("availableTokens")
	e.Int(s.AvailableTokens)
	e.FieldStart("maxTokens")
	e.Int(s.MaxTokens)
	e.FieldStart("queueSize")
	e.Int(s.QueueSize)
	e.FieldStart("maxQueueSize")
	e.Int(s.MaxQueueSize)
	e.FieldStart("utilizationPercent")
	e.Int(s.UtilizationPercent)
	e.ObjEnd()
}
