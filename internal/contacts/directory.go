package contacts

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	toml "github.com/pelletier/go-toml/v2"
)

// Open picks a directory implementation for path by its extension:
// .vcf and .vcard are read as vCard, everything else as TOML.
func Open(path string) (Directory, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.Wrap(ErrNoDirectory, "no contacts file configured")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vcf", ".vcard":
		return VCardDirectory{Path: path}, nil
	default:
		return TOMLDirectory{Path: path}, nil
	}
}

// TOMLDirectory reads contacts from a TOML file of [[contact]] tables:
//
//	[[contact]]
//	given_name = "Jane Doe | Rex"
//	emails = ["jane@x.com"]
//	[[contact.address]]
//	street = "Main St 5"
//	city = "Alkmaar"
//	postal_code = "1811AB"
type TOMLDirectory struct {
	Path string
}

type tomlBook struct {
	Contacts []tomlContact `toml:"contact"`
}

type tomlContact struct {
	ID         string        `toml:"id"`
	GivenName  string        `toml:"given_name"`
	FamilyName string        `toml:"family_name"`
	Emails     []string      `toml:"emails"`
	Addresses  []tomlAddress `toml:"address"`
}

type tomlAddress struct {
	Street     string `toml:"street"`
	City       string `toml:"city"`
	PostalCode string `toml:"postal_code"`
}

// FetchAll parses the whole file.
func (d TOMLDirectory) FetchAll() ([]Contact, error) {
	data, err := readBook(d.Path)
	if err != nil {
		return nil, err
	}
	var book tomlBook
	if err := toml.Unmarshal(data, &book); err != nil {
		return nil, errors.Wrapf(err, "parse contacts %s", d.Path)
	}

	out := make([]Contact, 0, len(book.Contacts))
	for _, raw := range book.Contacts {
		c := Contact{
			GivenName:  strings.TrimSpace(raw.GivenName),
			FamilyName: strings.TrimSpace(raw.FamilyName),
			Emails:     trimAll(raw.Emails),
		}
		for _, a := range raw.Addresses {
			c.Addresses = append(c.Addresses, Address{
				Street:     strings.TrimSpace(a.Street),
				City:       strings.TrimSpace(a.City),
				PostalCode: strings.TrimSpace(a.PostalCode),
			})
		}
		c.ID = contactID(raw.ID, c)
		out = append(out, c)
	}
	return out, nil
}

// VCardDirectory reads contacts from a vCard export holding one or more cards.
type VCardDirectory struct {
	Path string
}

// FetchAll decodes every card in the file.
func (d VCardDirectory) FetchAll() ([]Contact, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "open contacts %s", d.Path), ErrNoDirectory)
	}
	defer f.Close()

	var out []Contact
	dec := vcard.NewDecoder(f)
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "decode contacts %s", d.Path)
		}
		out = append(out, fromCard(card))
	}
	return out, nil
}

func fromCard(card vcard.Card) Contact {
	var c Contact
	if name := card.Name(); name != nil {
		c.GivenName = strings.TrimSpace(name.GivenName)
		c.FamilyName = strings.TrimSpace(name.FamilyName)
	}
	if c.GivenName == "" && c.FamilyName == "" {
		c.GivenName = strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName))
	}
	c.Emails = trimAll(card.Values(vcard.FieldEmail))
	for _, a := range card.Addresses() {
		c.Addresses = append(c.Addresses, Address{
			Street:     strings.TrimSpace(a.StreetAddress),
			City:       strings.TrimSpace(a.Locality),
			PostalCode: strings.TrimSpace(a.PostalCode),
		})
	}
	c.ID = contactID(card.Value(vcard.FieldUID), c)
	return c
}

func readBook(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read contacts %s", path), ErrNoDirectory)
	}
	return data, nil
}

// contactID parses an explicit UUID, or derives a stable one from the
// contact's name and first email so list selection survives reloads.
func contactID(explicit string, c Contact) uuid.UUID {
	explicit = strings.TrimPrefix(strings.TrimSpace(explicit), "urn:uuid:")
	if id, err := uuid.Parse(explicit); err == nil {
		return id
	}
	seed := c.GivenName + "\x00" + c.FamilyName + "\x00" + c.PrimaryEmail() + "\x00" + explicit
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
