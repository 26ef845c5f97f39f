// Copyright (c) 2025-2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/choria-io/fisk"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"github.com/choria-io/upm/model"
	"github.com/choria-io/upm/session"
)

type historyCmd struct {
	operation  string
	where      string
	query      string
	jsonFormat bool
	yamlFormat bool
}

func registerHistoryCommand(app *fisk.Application) {
	cmd := &historyCmd{}

	history := app.Command("history", "Shows recorded operations").Action(cmd.historyAction)
	history.Arg("query", "Query to execute against the JSON history").StringVar(&cmd.query)
	history.Flag("operation", "Only show this operation").EnumVar(&cmd.operation, operationNames()...)
	history.Flag("where", "Only show events matching this expression").PlaceHolder("EXPR").StringVar(&cmd.where)
	history.Flag("json", "Output history in JSON format").UnNegatableBoolVar(&cmd.jsonFormat)
	history.Flag("yaml", "Output history in YAML format").UnNegatableBoolVar(&cmd.yamlFormat)
}

func operationNames() []string {
	var res []string
	for _, op := range model.Operations() {
		res = append(res, op.String())
	}
	return res
}

func (c *historyCmd) historyAction(_ *fisk.ParseContext) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	if mgr.Config().SessionDirectory == "" {
		return fmt.Errorf("no session directory configured")
	}

	events, err := mgr.History()
	if err != nil {
		return err
	}

	events, err = session.SelectEvents(session.FilterEvents(events, model.Operation(c.operation)), c.where)
	if err != nil {
		return err
	}

	if c.jsonFormat || c.yamlFormat || c.query != "" {
		return renderHistoryData(os.Stdout, events, c.query, c.yamlFormat)
	}

	renderHistory(os.Stdout, events)

	return nil
}

func renderHistoryData(w io.Writer, events []*model.OperationEvent, query string, yamlFormat bool) error {
	if events == nil {
		events = []*model.OperationEvent{}
	}

	j, err := json.Marshal(events)
	if err != nil {
		return err
	}

	if query != "" {
		j = []byte(gjson.GetBytes(j, query).Raw)
	}

	if yamlFormat {
		y, err := yaml.JSONToYAML(j)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(y))
		return err
	}

	buf := bytes.NewBuffer([]byte{})
	err = json.Indent(buf, j, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, buf.String())
	return err
}

func renderHistory(w io.Writer, events []*model.OperationEvent) {
	for _, e := range events {
		line := fmt.Sprintf("%s %-8s %-20s %-9s", e.TimeStamp.Local().Format(time.DateTime), e.Backend, e.Operation, e.Outcome)
		if e.DryRun {
			line += " (dry run)"
		}
		if len(e.Keywords) > 0 {
			line += " " + strings.Join(e.Keywords, " ")
		}

		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}

	summary := model.BuildSessionSummary(events)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "History Summary")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "   Total Operations: %d\n", summary.Total)
	fmt.Fprintf(w, "          Succeeded: %d\n", summary.Succeeded)
	fmt.Fprintf(w, "             Failed: %d\n", summary.Failed)
	fmt.Fprintf(w, "          Cancelled: %d\n", summary.Cancelled)
	fmt.Fprintf(w, "            Errored: %d\n", summary.Errored)
}
