// internals/features/schools/directory.go
package schools

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// Entry is one school account from school_config.json. Passwords are stored
// as sha256 hex digests, never plain.
type Entry struct {
	Username   string `json:"username"`
	SchoolName string `json:"schoolName"`
	SchoolCode string `json:"schoolCode"`
	Password   string `json:"password"`
}

type configFile struct {
	Schools []Entry `json:"schools"`
}

// Directory is the immutable username -> school mapping loaded at boot.
type Directory struct {
	byUsername map[string]Entry
}

// Load reads the school config file. A missing file yields an empty directory
// so the server can still run with admin-only access.
func Load(path string) (*Directory, error) {
	dir := &Directory{byUsername: map[string]Entry{}}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return dir, nil
	}
	if err != nil {
		return nil, fmt.Errorf("school config: %w", err)
	}

	var cfg configFile
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("school config: %w", err)
	}
	for _, e := range cfg.Schools {
		if e.Username == "" || e.SchoolName == "" {
			continue
		}
		dir.byUsername[e.Username] = e
	}
	return dir, nil
}

// Lookup resolves a username to its school entry.
func (d *Directory) Lookup(username string) (Entry, bool) {
	e, ok := d.byUsername[username]
	return e, ok
}

// SchoolNameFor returns the school name behind a username, or "".
func (d *Directory) SchoolNameFor(username string) string {
	if e, ok := d.byUsername[username]; ok {
		return e.SchoolName
	}
	return ""
}

// Authenticate checks a username/password pair against the stored hash.
func (d *Directory) Authenticate(username, password string) (Entry, bool) {
	e, ok := d.byUsername[username]
	if !ok {
		return Entry{}, false
	}
	sum := sha256.Sum256([]byte(password))
	digest := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(digest), []byte(e.Password)) != 1 {
		return Entry{}, false
	}
	return e, true
}

// Count reports how many school accounts are configured.
func (d *Directory) Count() int { return len(d.byUsername) }

// Entries returns a copy of every configured account without password hashes.
func (d *Directory) Entries() []Entry {
	out := make([]Entry, 0, len(d.byUsername))
	for _, e := range d.byUsername {
		e.Password = ""
		out = append(out, e)
	}
	return out
}
