package segy

import "fmt"

// Text is the textual header view: slot 0 is the mandatory 3200-byte
// header, slots 1..ExtHeaders are the extended headers. Text is
// converted between the on-disk EBCDIC encoding and ASCII on the way
// through.
type Text struct {
	f *File
}

// Len returns the number of textual header slots.
func (t *Text) Len() int {
	return t.f.extHeaders + 1
}

func (t *Text) checkSlot(slot int) error {
	if slot < 0 || slot > t.f.extHeaders {
		return fmt.Errorf("%w: textual header %d not in file", ErrOutOfRange, slot)
	}
	return nil
}

// Get reads one textual header slot as a 3200-character string, no
// line breaks.
func (t *Text) Get(slot int) (string, error) {
	if err := t.f.checkOpen(); err != nil {
		return "", err
	}
	if err := t.checkSlot(slot); err != nil {
		return "", err
	}
	return t.f.fd.ReadText(slot)
}

// Set writes one textual header slot; text is space-padded or
// truncated to 3200 characters.
func (t *Text) Set(slot int, text string) error {
	if err := t.f.checkWritable(); err != nil {
		return err
	}
	if err := t.checkSlot(slot); err != nil {
		return err
	}
	return t.f.fd.WriteText(slot, text)
}
