package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"tracker/internal/dto"
	"tracker/internal/presenter"
	"tracker/internal/service/orderlist"
)

const commandsHint = "open | closed | retry | quit"

// view рисует экран списка в терминал. Состояния приходят из binder
// под его блокировкой, поэтому push не пишет в out, а только кладет
// последнее состояние в буфер на одно место.
type view struct {
	out       io.Writer
	presenter *presenter.Presenter
	tag       language.Tag

	states chan orderlist.State

	header *color.Color
	muted  *color.Color
	failed *color.Color
}

func newView(out io.Writer, presenter *presenter.Presenter, tag language.Tag, colored bool) *view {
	v := &view{
		out:       out,
		presenter: presenter,
		tag:       tag,
		states:    make(chan orderlist.State, 1),
		header:    color.New(color.Bold),
		muted:     color.New(color.Faint),
		failed:    color.New(color.FgRed),
	}
	if !colored {
		v.header.DisableColor()
		v.muted.DisableColor()
		v.failed.DisableColor()
	}
	return v
}

// push вызывается последовательно, читатель только забирает,
// так что после вычитки старого значения место всегда свободно.
func (v *view) push(state orderlist.State) {
	select {
	case <-v.states:
	default:
	}
	v.states <- state
}

func (v *view) render(state orderlist.State) error {
	return v.renderScreen(v.presenter.OrderList(v.tag, state))
}

func (v *view) renderScreen(screen dto.OrderListScreen) error {
	var b strings.Builder

	v.header.Fprintf(&b, "%s · %s (%d)\n", screen.Title, screen.FilterLabel, screen.Count)

	switch {
	case screen.Loading:
		v.muted.Fprintln(&b, "...")
	case len(screen.Orders) == 0 && screen.EmptyMessage != "":
		v.muted.Fprintln(&b, screen.EmptyMessage)
	default:
		tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		for _, item := range screen.Orders {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", item.Patrimony, item.Description, item.When, item.ID)
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("flush table: %w", err)
		}
	}

	if screen.Error != nil {
		msg := screen.Error.Message
		if screen.Error.Retryable {
			msg = fmt.Sprintf("%s [retry: %s]", msg, screen.Error.RetryLabel)
		}
		v.failed.Fprintln(&b, msg)
	}

	v.muted.Fprintf(&b, "%s: %s\n\n", screen.NewOrderLabel, screen.NewOrderPath)
	b.WriteString("> " + commandsHint + "\n")

	if _, err := io.WriteString(v.out, b.String()); err != nil {
		return fmt.Errorf("write screen: %w", err)
	}
	return nil
}
