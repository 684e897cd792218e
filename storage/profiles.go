package storage

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/luma/parley/session"
)

var ErrUnknownProfile = errors.New("No connection profile with that name exists")

const defaultPort = 6667

// ProfileStore holds named connection profiles as one JSON document, e.g.
//
//	{"libera":{"host":"irc.libera.chat","nick":"mynick","channels":["#go-nuts"]}}
//
// Fields are addressed by gjson path, so `libera.host` reads the host of
// the `libera` profile.
type ProfileStore struct {
	mu     sync.Mutex
	values []byte
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		values: []byte(""),
	}
}

// Set writes one field of the document by path.
func (p *ProfileStore) Set(path string, value interface{}) (err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.values, err = sjson.SetBytes(p.values, path, value)
	return err
}

// Get reads one field of the document by path.
func (p *ProfileStore) Get(path string) gjson.Result {
	p.mu.Lock()
	defer p.mu.Unlock()

	return gjson.GetBytes(p.values, path)
}

// Profile materializes the named profile into a session config. Missing
// port falls back to the default IRC port; missing username and real name
// fall back to the nick, matching what connect does for flags.
func (p *ProfileStore) Profile(name string) (session.Config, error) {
	p.mu.Lock()
	root := gjson.GetBytes(p.values, name)
	p.mu.Unlock()

	if !root.Exists() {
		return session.Config{}, fmt.Errorf("Failed to load profile '%s': %w", name, ErrUnknownProfile)
	}

	conf := session.Config{
		Host:     root.Get("host").String(),
		Port:     int(root.Get("port").Int()),
		Nick:     root.Get("nick").String(),
		Username: root.Get("username").String(),
		RealName: root.Get("realname").String(),
	}

	for _, channel := range root.Get("channels").Array() {
		conf.Channels = append(conf.Channels, channel.String())
	}

	if conf.Port == 0 {
		conf.Port = defaultPort
	}

	if conf.Username == "" {
		conf.Username = conf.Nick
	}

	if conf.RealName == "" {
		conf.RealName = conf.Nick
	}

	return conf, nil
}

// Backup returns the whole document.
func (p *ProfileStore) Backup() ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.values) == 0 {
		return []byte("{}"), nil
	}

	return p.values, nil
}

// Restore replaces the whole document.
func (p *ProfileStore) Restore(values []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.values = values
	return nil
}

// LoadFile reads the document from disk.
func (p *ProfileStore) LoadFile(path string) error {
	values, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return p.Restore(values)
}

// SaveFile writes the document to disk.
func (p *ProfileStore) SaveFile(path string) error {
	values, err := p.Backup()
	if err != nil {
		return err
	}

	return os.WriteFile(path, values, 0600)
}
