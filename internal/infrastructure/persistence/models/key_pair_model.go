package models

import (
	"fmt"
	"math/big"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
)

// KeyPairModel is the GORM database model for stored key pairs.
// Big integers are kept as decimal strings so every driver can hold them.
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	BitLength       int       `gorm:"not null;index"`
	Fingerprint     string    `gorm:"not null;index;type:varchar(64)"`
	PublicExponent  string    `gorm:"not null;type:text"`
	PrivateExponent string    `gorm:"not null;type:text"`
	Modulus         string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() (*keys.KeyPairMeta, error) {
	e, err := parseDecimal("public exponent", m.PublicExponent)
	if err != nil {
		return nil, err
	}
	d, err := parseDecimal("private exponent", m.PrivateExponent)
	if err != nil {
		return nil, err
	}
	n, err := parseDecimal("modulus", m.Modulus)
	if err != nil {
		return nil, err
	}

	return &keys.KeyPairMeta{
		ID:              m.ID,
		BitLength:       m.BitLength,
		Fingerprint:     m.Fingerprint,
		KeyPair:         &cryptoalg.KeyPair{PublicExponent: e, PrivateExponent: d, Modulus: n},
		DateTimeCreated: m.DateTimeCreated,
	}, nil
}

// FromDomain converts domain entity to GORM model
func (m *KeyPairModel) FromDomain(k *keys.KeyPairMeta) {
	m.ID = k.ID
	m.BitLength = k.BitLength
	m.Fingerprint = k.Fingerprint
	m.PublicExponent = k.KeyPair.PublicExponent.String()
	m.PrivateExponent = k.KeyPair.PrivateExponent.String()
	m.Modulus = k.KeyPair.Modulus.String()
	m.DateTimeCreated = k.DateTimeCreated
}

func parseDecimal(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("stored %s %q is not a decimal integer", name, s)
	}
	return v, nil
}
