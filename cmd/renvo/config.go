// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"renvo-cli/internal/config"
	"renvo-cli/internal/issue"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage renvo configuration",
	Long: `Manage renvo configuration.

Configuration is stored in:
  - Linux: ~/.config/renvo/config.toml
  - macOS: ~/Library/Application Support/renvo/config.toml
  - Windows: %APPDATA%\renvo\config.toml

A .renvo.toml file in the current directory is used when no file exists
in the config directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(args[0], args[1])
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			content, err := config.GenerateTOML(cfg)
			if err != nil {
				return err
			}
			fmt.Print(content)
			return nil
		},
	})
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render(issueStyle())
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	// Style definitions using shared color palette
	headerStyle := TitleStyle
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Println(headerStyle.Render("Current Configuration"))
	fmt.Println()

	if path := config.ConfigFilePath(); path != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	// Show values
	if cfg.Command.IsBuiltin() {
		fmt.Printf("%s: %s\n", keyStyle.Render("command"), SubtitleStyle.Render("(built-in rename)"))
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("command"), valueStyle.Render(cfg.Command.String()))
	}
	fmt.Printf("%s: %s\n", keyStyle.Render("shell"), valueStyle.Render(cfg.Shell.String()))
	fmt.Printf("%s: %s\n", keyStyle.Render("clean_mode"), valueStyle.Render(cfg.CleanMode.String()))
	fmt.Printf("%s: %s\n", keyStyle.Render("make_dirs"), valueStyle.Render(fmt.Sprintf("%v", cfg.MakeDirs)))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	if err = config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Printf("%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)

	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	fmt.Printf("Config directory: %s\n", cfgDir)
	fmt.Printf("Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))

	return nil
}

func setConfigValue(key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch key {
	case "command":
		mc := config.MoveCommand(value)
		if valid, fieldErrs := mc.IsValid(); !valid {
			return errors.Join(fieldErrs...)
		}
		cfg.Command = mc

	case "shell":
		sm := config.ShellMode(value)
		if valid, fieldErrs := sm.IsValid(); !valid {
			return errors.Join(fieldErrs...)
		}
		cfg.Shell = sm

	case "clean_mode":
		cm := config.CleanMode(value)
		if valid, fieldErrs := cm.IsValid(); !valid {
			return errors.Join(fieldErrs...)
		}
		cfg.CleanMode = cm

	case "make_dirs":
		cfg.MakeDirs = value == "true" || value == "1"

	case "ui.color_scheme":
		cs := config.ColorScheme(value)
		if valid, fieldErrs := cs.IsValid(); !valid {
			return errors.Join(fieldErrs...)
		}
		cfg.UI.ColorScheme = cs

	case "ui.verbose":
		cfg.UI.Verbose = value == "true" || value == "1"

	default:
		return fmt.Errorf("unknown configuration key: %s\nValid keys: command, shell, clean_mode, make_dirs, ui.color_scheme, ui.verbose", key)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("%s Set %s = %s\n", SuccessStyle.Render("✓"), key, value)
	return nil
}
