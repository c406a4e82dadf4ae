// Package get provides the runner logic behind taskcal get.
package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/Sma11zen/taskcalendar/pkg/app"
	"github.com/Sma11zen/taskcalendar/pkg/printers"
	"github.com/Sma11zen/taskcalendar/pkg/views"
)

// Get prints one bucket, or every visible section.
type Get struct {
	ShowID bool
	Kind   views.Kind
	All    bool
	Filter views.Filter
	Output string // "json" for machine output

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	todayKey := n.Service.TodayKey()

	if n.Output == "json" {
		return n.doJSON(todayKey)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if !n.All {
		bucket := n.Filter.Apply(n.Service.Bucket(n.Kind), todayKey)
		pp.TitleWithCount(fmt.Sprintf("%s %s", n.Kind.Icon(), n.Kind.Title()), len(bucket))
		pp.Section(todayKey, bucket...)
		return nil
	}

	pp.Sections(todayKey, n.Service.Sections(n.Filter))
	return nil
}

func (n *Get) doJSON(todayKey string) error {
	var payload interface{}
	if n.All {
		payload = n.Service.Sections(n.Filter)
	} else {
		payload = n.Filter.Apply(n.Service.Bucket(n.Kind), todayKey)
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
