package datefmt

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	LayoutPortuguese = "02/01/2006 às 15:04:05"
	LayoutEnglish    = "1/2/2006 at 3:04:05 PM"
)

var (
	ErrMissingTimestamp = errors.New("timestamp is missing")
	ErrInvalidTimestamp = errors.New("timestamp is invalid")
)

// Formatter переводит метку времени хранилища в строку для экрана
// в заданной локали и часовом поясе.
type Formatter struct {
	layout   string
	location *time.Location
}

func New(tag language.Tag, location *time.Location) *Formatter {
	if location == nil {
		location = time.UTC
	}
	return &Formatter{
		layout:   LayoutFor(tag),
		location: location,
	}
}

// LayoutFor: португальский для любой португальской локали, иначе американский.
func LayoutFor(tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() == "pt" {
		return LayoutPortuguese
	}
	return LayoutEnglish
}

func (f *Formatter) Format(ts *timestamppb.Timestamp) (string, error) {
	if ts == nil {
		return "", ErrMissingTimestamp
	}
	if err := ts.CheckValid(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
	}
	return ts.AsTime().In(f.location).Format(f.layout), nil
}
