// Package nsec3 handles the fields NSEC3 and NSEC3PARAM records share
// (RFC 5155): hash algorithm, flags, iterations and the hex encoded salt, and
// computes hashed owner names in base32hex.
package nsec3

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/bokysan/basen/enc"
	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

const (
	// SHA1 is the only hash algorithm defined for NSEC3.
	SHA1 uint8 = 1

	// MaxSaltLength is the largest salt the one byte length field can describe.
	MaxSaltLength = 255

	// noSalt is the presentation form of an empty salt.
	noSalt = "-"

	fixedWireLength = 5
)

// Param holds the hash parameters of an NSEC3 or NSEC3PARAM record.
type Param struct {
	Algorithm  uint8
	Flags      uint8
	Iterations uint16
	Salt       []byte
}

// ParseParamText parses the presentation form of an NSEC3PARAM RDATA,
// e.g. "1 0 10 AABBCCDD". The salt is hex, or "-" when empty.
func ParseParamText(text string) (*Param, error) {
	fields := strings.Fields(text)
	p, rest, err := ParseParamFields("NSEC3PARAM", fields)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, errors.Errorf("NSEC3PARAM: extra input text: %q", strings.Join(rest, " "))
	}
	return p, nil
}

// ParseParamFields reads the four leading parameter fields of an NSEC3 or
// NSEC3PARAM presentation form and returns the fields that follow them.
// rrType only shows up in error messages.
func ParseParamFields(rrType string, fields []string) (*Param, []string, error) {
	if len(fields) < 4 {
		return nil, nil, errors.Errorf("%s: expected 4 parameter fields, got %d", rrType, len(fields))
	}

	alg, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s: invalid hash algorithm %q", rrType, fields[0])
	}
	flags, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s: invalid flags %q", rrType, fields[1])
	}
	iterations, err := strconv.ParseUint(fields[2], 10, 16)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s: invalid iterations %q", rrType, fields[2])
	}

	salt, err := parseSalt(fields[3])
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s: invalid salt %q", rrType, fields[3])
	}

	return &Param{
		Algorithm:  uint8(alg),
		Flags:      uint8(flags),
		Iterations: uint16(iterations),
		Salt:       salt,
	}, fields[4:], nil
}

func parseSalt(text string) ([]byte, error) {
	if text == noSalt || text == "" {
		return []byte{}, nil
	}
	salt, err := enc.DecodeHex(text)
	if err != nil {
		return nil, err
	}
	if len(salt) > MaxSaltLength {
		return nil, errors.Errorf("salt is too long: %d bytes", len(salt))
	}
	return salt, nil
}

// ParseParamWire reads the parameter fields from the start of a wire
// format NSEC3 or NSEC3PARAM RDATA. It returns the number of RDATA bytes
// left after the salt; for a valid NSEC3PARAM that is zero.
func ParseParamWire(rdata []byte) (*Param, int, error) {
	if len(rdata) < fixedWireLength {
		return nil, 0, errors.Errorf("NSEC3 parameters too short: %d bytes", len(rdata))
	}
	saltLen := int(rdata[4])
	if len(rdata) < fixedWireLength+saltLen {
		return nil, 0, errors.Errorf("NSEC3 salt length %d exceeds RDATA (%d bytes)", saltLen, len(rdata)-fixedWireLength)
	}
	salt := make([]byte, saltLen)
	copy(salt, rdata[fixedWireLength:])

	return &Param{
		Algorithm:  rdata[0],
		Flags:      rdata[1],
		Iterations: binary.BigEndian.Uint16(rdata[2:4]),
		Salt:       salt,
	}, len(rdata) - fixedWireLength - saltLen, nil
}

// Wire returns the wire format of the parameters.
func (p *Param) Wire() []byte {
	out := make([]byte, fixedWireLength, fixedWireLength+len(p.Salt))
	out[0] = p.Algorithm
	out[1] = p.Flags
	binary.BigEndian.PutUint16(out[2:4], p.Iterations)
	out[4] = byte(len(p.Salt))
	return append(out, p.Salt...)
}

// SaltString is the presentation form of the salt.
func (p *Param) SaltString() string {
	if len(p.Salt) == 0 {
		return noSalt
	}
	return enc.EncodeHex(p.Salt)
}

func (p *Param) String() string {
	return fmt.Sprintf("%d %d %d %s", p.Algorithm, p.Flags, p.Iterations, p.SaltString())
}

// FromRR takes the parameters of a parsed NSEC3PARAM record.
func FromRR(rr *dns.NSEC3PARAM) (*Param, error) {
	salt, err := parseSalt(rr.Salt)
	if err != nil {
		return nil, errors.Wrapf(err, "NSEC3PARAM %s: invalid salt", rr.Hdr.Name)
	}
	return &Param{
		Algorithm:  rr.Hash,
		Flags:      rr.Flags,
		Iterations: rr.Iterations,
		Salt:       salt,
	}, nil
}

// RR builds an NSEC3PARAM record for the zone apex owner.
func (p *Param) RR(owner string, ttl uint32) *dns.NSEC3PARAM {
	salt := ""
	if len(p.Salt) > 0 {
		salt = enc.EncodeHex(p.Salt)
	}
	return &dns.NSEC3PARAM{
		Hdr: dns.RR_Header{
			Name:   dns.Fqdn(owner),
			Rrtype: dns.TypeNSEC3PARAM,
			Class:  dns.ClassINET,
			Ttl:    ttl,
		},
		Hash:       p.Algorithm,
		Flags:      p.Flags,
		Iterations: p.Iterations,
		SaltLength: uint8(len(p.Salt)),
		Salt:       salt,
	}
}

// HashName returns the hashed owner name label of name: the base32hex
// encoding of the iterated SHA-1 of its canonical wire form.
func (p *Param) HashName(name string) (string, error) {
	if p.Algorithm != SHA1 {
		return "", errors.Errorf("unsupported NSEC3 hash algorithm %d", p.Algorithm)
	}

	wire, err := canonicalWire(name)
	if err != nil {
		return "", err
	}

	h := sha1.New()
	h.Write(wire)
	h.Write(p.Salt)
	digest := h.Sum(nil)
	for i := uint16(0); i < p.Iterations; i++ {
		h.Reset()
		h.Write(digest)
		h.Write(p.Salt)
		digest = h.Sum(digest[:0])
	}

	return enc.EncodeBase32Hex(digest), nil
}

// canonicalWire packs name, lower cased and fully qualified, into wire format.
func canonicalWire(name string) ([]byte, error) {
	fqdn := dns.Fqdn(strings.ToLower(name))
	if _, ok := dns.IsDomainName(fqdn); !ok {
		return nil, errors.Errorf("invalid domain name: %q", name)
	}
	buf := make([]byte, 256)
	off, err := dns.PackDomainName(fqdn, buf, 0, nil, false)
	if err != nil {
		return nil, errors.Wrapf(err, "could not pack %q", name)
	}
	return buf[:off], nil
}
