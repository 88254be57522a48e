package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type Key string

const (
	KeyOrdersTitle       Key = "orders.title"
	KeyOrderDetailsTitle Key = "order_details.title"
	KeyNewOrder          Key = "orders.new"
	KeyFilterOpen        Key = "orders.filter.open"
	KeyFilterClosed      Key = "orders.filter.closed"
	KeyEmptyOpen         Key = "orders.empty.open"
	KeyEmptyClosed       Key = "orders.empty.closed"
	KeyLoadFailed        Key = "orders.load_failed"
	KeyInvalidData       Key = "orders.invalid_data"
	KeyRetry             Key = "orders.retry"
	KeySignOutTitle      Key = "signout.title"
	KeySignOutFailed     Key = "signout.failed"
)

var (
	PortugueseBR = language.BrazilianPortuguese
	EnglishUS    = language.AmericanEnglish
)

var messages = map[language.Tag]map[Key]string{
	PortugueseBR: {
		KeyOrdersTitle:       "Solicitações",
		KeyOrderDetailsTitle: "Solicitação",
		KeyNewOrder:          "Nova solicitação",
		KeyFilterOpen:        "Em andamento",
		KeyFilterClosed:      "Finalizados",
		KeyEmptyOpen:         "Você ainda não possui\nsolicitações em andamento",
		KeyEmptyClosed:       "Você ainda não possui\nsolicitações finalizadas",
		KeyLoadFailed:        "Não foi possível carregar as solicitações.",
		KeyInvalidData:       "Recebemos dados inválidos do servidor.",
		KeyRetry:             "Tentar novamente",
		KeySignOutTitle:      "Sair",
		KeySignOutFailed:     "Não foi possível sair.",
	},
	EnglishUS: {
		KeyOrdersTitle:       "Requests",
		KeyOrderDetailsTitle: "Request",
		KeyNewOrder:          "New request",
		KeyFilterOpen:        "In progress",
		KeyFilterClosed:      "Finished",
		KeyEmptyOpen:         "You don't have any\nrequests in progress yet",
		KeyEmptyClosed:       "You don't have any\nfinished requests yet",
		KeyLoadFailed:        "Could not load requests.",
		KeyInvalidData:       "The server sent invalid data.",
		KeyRetry:             "Try again",
		KeySignOutTitle:      "Sign out",
		KeySignOutFailed:     "Could not sign out.",
	},
}

// Translator хранит каталог строк экранов и выбирает локаль по Accept-Language.
type Translator struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	ordered  []language.Tag
	fallback language.Tag
}

// New собирает каталог. defaultLocale должна быть одной из поддерживаемых.
func New(defaultLocale string) (*Translator, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	supported := Supported()
	_, idx, confidence := language.NewMatcher(supported).Match(fallback)
	if confidence == language.No {
		return nil, fmt.Errorf("default locale %q is not supported", defaultLocale)
	}
	fallback = supported[idx]

	// первым идет язык по умолчанию: на него падает матчер при отсутствии совпадений
	ordered := []language.Tag{fallback}
	for _, tag := range supported {
		if tag != fallback {
			ordered = append(ordered, tag)
		}
	}

	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := builder.SetString(tag, string(key), msg); err != nil {
				return nil, fmt.Errorf("register %s/%s: %w", tag, key, err)
			}
		}
	}

	return &Translator{
		catalog:  builder,
		matcher:  language.NewMatcher(ordered),
		ordered:  ordered,
		fallback: fallback,
	}, nil
}

func Supported() []language.Tag {
	return []language.Tag{PortugueseBR, EnglishUS}
}

func (t *Translator) Default() language.Tag {
	return t.fallback
}

// Match выбирает поддерживаемую локаль по заголовку Accept-Language.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	if strings.TrimSpace(acceptLanguage) == "" {
		return t.fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.fallback
	}

	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.fallback
	}
	return t.ordered[idx]
}

func (t *Translator) Text(tag language.Tag, key Key) string {
	printer := message.NewPrinter(tag, message.Catalog(t.catalog))
	return printer.Sprintf(string(key))
}
