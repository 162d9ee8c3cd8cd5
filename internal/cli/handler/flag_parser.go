// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/blogdb/internal/cli"
	"github.com/thenoetrevino/blogdb/internal/types"
)

// FlagParser provides common flag extraction patterns.
// Every error it returns is a *cli.UsageError.
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseUserID extracts a user ID from a flag
func (p *FlagParser) ParseUserID(flagName string) (types.UserID, error) {
	id, err := p.ParseInt(flagName)
	return types.UserID(id), err
}

// ParsePostID extracts a post ID from a flag
func (p *FlagParser) ParsePostID(flagName string) (types.PostID, error) {
	id, err := p.ParseInt(flagName)
	return types.PostID(id), err
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", usage("failed to parse %s flag: %v", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", usage("%s is required", flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", usage("failed to parse %s flag: %v", flagName, err)
	}
	return value, nil
}

// ParseInt extracts a required positive int flag
func (p *FlagParser) ParseInt(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, usage("failed to parse %s flag: %v", flagName, err)
	}
	if value <= 0 {
		return 0, usage("%s must be greater than 0", flagName)
	}
	return value, nil
}

// ParseIntOptional extracts an optional int flag
func (p *FlagParser) ParseIntOptional(flagName string) (int, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, usage("failed to parse %s flag: %v", flagName, err)
	}
	return value, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	value, err := p.cmd.Flags().GetBool(flagName)
	if err != nil {
		return false, usage("failed to parse %s flag: %v", flagName, err)
	}
	return value, nil
}

// Changed reports whether the flag was set on the command line
func (p *FlagParser) Changed(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.ParseBool("json")
	if err != nil {
		return false, false, err
	}

	quietMode, err = p.ParseBool("quiet")
	if err != nil {
		return false, false, err
	}

	return jsonOutput, quietMode, nil
}

func usage(format string, args ...any) error {
	return cli.NewUsageError(fmt.Errorf(format, args...))
}
