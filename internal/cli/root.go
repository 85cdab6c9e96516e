// Package cli реализует офлайн-интерфейс командной строки к модели риска.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Version задается при сборке
var Version = "0.1.0"

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// NewRootCmd собирает дерево команд neorisk
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "neorisk",
		Short: "Offline asteroid impact risk calculator",
		Long: `neorisk runs the impact risk model locally, without the catalog,
database or network.

Examples:
  neorisk assess --diameter 340 --velocity 7.42 --material rock
  neorisk assess --diameter 100 --eccentricity 0.9 --semi-major-axis 600 --output yaml
  neorisk materials`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newAssessCmd())
	root.AddCommand(newMaterialsCmd())
	return root
}

// Execute запускает CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// writeOutput печатает значение в выбранном формате
func writeOutput(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		out, err := toYAML(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q, expected json or yaml", format)
	}
}

// toYAML кодирует значение через JSON, чтобы ключи совпадали с API
func toYAML(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	// JSON является валидным YAML, порядок ключей сохраняется
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode as yaml: %w", err)
	}
	resetStyle(&doc)

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}

// resetStyle переводит flow-узлы JSON в блочный стиль
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		resetStyle(child)
	}
}
