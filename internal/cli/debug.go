package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	StorePath DebugStorePathCmd `cmd:"" help:"Show the store path and backend."`
	Keys      DebugKeysCmd      `cmd:"" help:"List the keys held by the store."`
	Dump      DebugDumpCmd      `cmd:"" help:"Dump the raw value of a key."`
}

type DebugStorePathCmd struct{}

func (cmd *DebugStorePathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"path":    ctx.Store.GetConfigPath(),
		"backend": backendName(ctx),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Fprintln(ctx.out(), string(jsonBytes))
	return nil
}

type DebugKeysCmd struct{}

func (cmd *DebugKeysCmd) Run(ctx *Context) error {
	keys, err := ctx.Store.Backend().Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintln(ctx.out(), k)
	}
	return nil
}

type DebugDumpCmd struct {
	Key string `arg:"" help:"Key to dump (e.g. dailyNotesV9)."`
}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	raw, ok, err := ctx.Store.Backend().Get(cmd.Key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("key not found: %s", cmd.Key)
	}

	// JSON values are indented, anything else is printed as stored
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
		fmt.Fprintln(ctx.out(), raw)
		return nil
	}
	fmt.Fprintln(ctx.out(), buf.String())
	return nil
}
