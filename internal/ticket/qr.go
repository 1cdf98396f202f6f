// Package ticket renders the digital ticket QR code shown at the box
// office.
package ticket

import (
    "encoding/json"
    "fmt"

    "github.com/skip2/go-qrcode"
)

// Payload is the JSON encoded into the ticket QR code.  It carries only
// what the box office needs to eyeball a ticket; validation happens
// against the order record, so nothing sensitive is embedded.
type Payload struct {
    Reference  string   `json:"ref"`
    Customer   string   `json:"u"`
    MovieTitle string   `json:"m"`
    Hall       string   `json:"h"`
    Seats      []string `json:"s"`
    Total      string   `json:"t"` // formatted grand total, e.g. "$17.00"
}

// EncodePayload serializes the payload to its QR JSON form.
func EncodePayload(p Payload) (string, error) {
    b, err := json.Marshal(p)
    if err != nil {
        return "", fmt.Errorf("encode ticket payload: %w", err)
    }
    return string(b), nil
}

// GeneratePNG renders the payload string as a QR code PNG.  Medium error
// correction matches what common scanner apps expect.
func GeneratePNG(payload string, size int) ([]byte, error) {
    qr, err := qrcode.New(payload, qrcode.Medium)
    if err != nil {
        return nil, fmt.Errorf("generate qr: %w", err)
    }
    png, err := qr.PNG(size)
    if err != nil {
        return nil, fmt.Errorf("encode qr png: %w", err)
    }
    return png, nil
}

// FormatCents renders a cent amount as a dollar string for the ticket,
// e.g. 1700 -> "$17.00".
func FormatCents(cents uint32) string {
    return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
