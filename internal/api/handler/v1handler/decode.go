package v1handler

import (
	"idverify/internal/dedup"
	"idverify/internal/verifier"
	"idverify/pkg/domain"
	"idverify/pkg/serrors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// maxBodyBytes bounds request bodies; a full submission batch fits comfortably.
const maxBodyBytes = 8 << 20

func readBody(w http.ResponseWriter, r *http.Request) (*jx.Decoder, error) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if len(b) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "request body is empty")
	}

	return jx.DecodeBytes(b), nil
}

func badBody(err error) error {
	return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
}

// decodeIdentityValue accepts a plaintext string or an {"encrypted","iv"} object.
func decodeIdentityValue(d *jx.Decoder) (domain.IdentityValue, error) {
	switch d.Next() {
	case jx.Null:
		return domain.IdentityValue{}, d.Null() //nolint: wrapcheck
	case jx.String:
		s, err := d.Str()

		return domain.PlainValue(s), err //nolint: wrapcheck
	case jx.Number:
		n, err := d.Num()

		return domain.PlainValue(n.String()), err //nolint: wrapcheck
	case jx.Object:
		var ev domain.EncryptedValue
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error
			switch key {
			case "encrypted":
				ev.Encrypted, err = d.Str()
			case "iv":
				ev.IV, err = d.Str()
			default:
				err = d.Skip()
			}

			return err //nolint: wrapcheck
		}); err != nil {
			return domain.IdentityValue{}, errors.Wrap(err, "encrypted identity")
		}
		if ev.Encrypted == "" || ev.IV == "" {
			return domain.IdentityValue{}, errors.New("encrypted identity requires encrypted and iv")
		}

		return domain.EncryptedIdentity(ev), nil
	default:
		return domain.IdentityValue{}, errors.New("identity must be a string or an encrypted object")
	}
}

// decodeData reads a flat object of submitted fields. Numbers and booleans
// are kept in their JSON text form and nulls are dropped.
func decodeData(d *jx.Decoder) (map[string]string, error) {
	data := map[string]string{}
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch d.Next() {
		case jx.String:
			s, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			data[key] = s
		case jx.Number:
			n, err := d.Num()
			if err != nil {
				return err //nolint: wrapcheck
			}
			data[key] = n.String()
		case jx.Bool:
			b, err := d.Bool()
			if err != nil {
				return err //nolint: wrapcheck
			}
			data[key] = strconv.FormatBool(b)
		case jx.Null:
			return d.Null() //nolint: wrapcheck
		default:
			return errors.Errorf("field %q must be a scalar", key)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "data")
	}

	return data, nil
}

// decodeSubmission reads one entry: identity fields keyed by their field name
// (nin, bvn, cac) plus an optional data object.
func decodeSubmission(d *jx.Decoder) (verifier.Submission, error) {
	sub := verifier.Submission{Identities: map[domain.IdentityType]domain.IdentityValue{}}
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key == "data" {
			data, err := decodeData(d)
			sub.Data = data

			return err
		}

		t, ok := domain.ParseIdentityType(key)
		if !ok {
			return d.Skip() //nolint: wrapcheck
		}
		v, err := decodeIdentityValue(d)
		if err != nil {
			return errors.Wrap(err, key)
		}
		sub.Identities[t] = v

		return nil
	})

	return sub, err //nolint: wrapcheck
}

func decodeSubmissions(d *jx.Decoder) ([]verifier.Submission, error) {
	var subs []verifier.Submission
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "entries" {
			return d.Skip() //nolint: wrapcheck
		}

		return d.Arr(func(d *jx.Decoder) error { //nolint: wrapcheck
			sub, err := decodeSubmission(d)
			if err != nil {
				return errors.Wrapf(err, "entries[%d]", len(subs))
			}
			subs = append(subs, sub)

			return nil
		})
	})
	if err != nil {
		return nil, badBody(err)
	}

	return subs, nil
}

type verifyRequest struct {
	identity string
	data     map[string]string
}

func decodeVerifyRequest(d *jx.Decoder, field string) (verifyRequest, error) {
	var req verifyRequest
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case field, "identity":
			v, err := decodeIdentityValue(d)
			if err != nil {
				return errors.Wrap(err, key)
			}
			if v.Encrypted != nil {
				return errors.Errorf("%s must be plaintext", key)
			}
			req.identity = v.Plain
		case "data":
			data, err := decodeData(d)
			if err != nil {
				return err
			}
			req.data = data
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	})
	if err != nil {
		return req, badBody(err)
	}

	return req, nil
}

func decodeCheckItem(d *jx.Decoder) (dedup.Item, error) {
	var (
		item    dedup.Item
		hasType bool
	)
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "entryId":
			s, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			id, err := uuid.Parse(s)
			if err != nil {
				return errors.Wrap(err, "entryId")
			}
			item.EntryID = domain.EntryID(id)
		case "type":
			s, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			t, ok := domain.ParseIdentityType(s)
			if !ok {
				return errors.Errorf("unsupported identity type %q", s)
			}
			item.Type, hasType = t, true
		case "value":
			v, err := decodeIdentityValue(d)
			if err != nil {
				return errors.Wrap(err, "value")
			}
			item.Value = v
		default:
			return d.Skip() //nolint: wrapcheck
		}

		return nil
	})
	if err != nil {
		return item, err //nolint: wrapcheck
	}
	if !hasType {
		return item, errors.New("type is required")
	}
	if item.Value.IsZero() {
		return item, errors.New("value is required")
	}

	return item, nil
}

func decodeCheckItems(d *jx.Decoder) ([]dedup.Item, error) {
	var items []dedup.Item
	seen := make(map[domain.EntryID]struct{})
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "items" {
			return d.Skip() //nolint: wrapcheck
		}

		return d.Arr(func(d *jx.Decoder) error { //nolint: wrapcheck
			item, err := decodeCheckItem(d)
			if err != nil {
				return errors.Wrapf(err, "items[%d]", len(items))
			}
			if item.EntryID == (domain.EntryID{}) {
				return errors.Errorf("items[%d]: entryId is required", len(items))
			}
			if _, dup := seen[item.EntryID]; dup {
				return errors.Errorf("items[%d]: entryId %s is repeated", len(items), item.EntryID)
			}
			seen[item.EntryID] = struct{}{}
			items = append(items, item)

			return nil
		})
	})
	if err != nil {
		return nil, badBody(err)
	}

	return items, nil
}
