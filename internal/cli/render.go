package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ByLCY/chartbox/dsl"
	"github.com/ByLCY/chartbox/element"
	"github.com/ByLCY/chartbox/layout"
	"github.com/ByLCY/chartbox/renderer"
	canvasrenderer "github.com/ByLCY/chartbox/renderer/canvas"
)

type renderOpts struct {
	output string
	format string
	data   string
	theme  string
	debug  string
	width  float64
	height float64
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a chart description to PDF or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: pdf, svg (default: from output extension, else pdf)")
	cmd.Flags().StringVar(&opts.data, "data", "", "JSON file bound to ${path} placeholders")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file")
	cmd.Flags().StringVar(&opts.debug, "debug", "", "write resolved layout boxes as JSON")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "page width in mm (overrides theme)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "page height in mm (overrides theme)")
	return cmd
}

func runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	th, err := loadTheme(opts.theme)
	if err != nil {
		return err
	}
	env, err := th.environment()
	if err != nil {
		return err
	}
	if opts.data != "" {
		if env.Data, err = readJSON(opts.data); err != nil {
			return err
		}
		logger.Debug("Loaded data", "path", opts.data)
	}

	format, output, err := resolveOutput(input, opts.output, opts.format)
	if err != nil {
		return err
	}
	width, height := th.Width, th.Height
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}

	prog := newProgress(logger)
	root, err := buildFile(input, env)
	if err != nil {
		return err
	}
	bg, err := th.background()
	if err != nil {
		return err
	}
	applyThemeBackground(root, bg)
	prog.done("Built " + input)

	var trace layout.Trace
	if opts.debug != "" {
		trace.Attach(root)
	}

	r, err := canvasrenderer.New(canvasrenderer.Options{
		BaseDir: filepath.Dir(input),
		Meta: canvasrenderer.Meta{
			Title:   strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)),
			Creator: "chartbox",
		},
	})
	if err != nil {
		return err
	}
	prog = newProgress(logger)
	data, err := r.Render(root, width, height, format)
	if err != nil {
		return fmt.Errorf("渲染 %s 失败: %w", input, err)
	}
	if err := writeFile(output, data); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %s (%gx%gmm)", output, width, height))

	if opts.debug != "" {
		if err := os.MkdirAll(filepath.Dir(opts.debug), 0o755); err != nil {
			return fmt.Errorf("创建调试目录失败: %w", err)
		}
		if err := layout.WriteDebugJSON(&trace, opts.debug); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
		logger.Debug("Wrote layout debug", "path", opts.debug, "layouts", len(trace.Layouts))
	}
	return nil
}

// buildFile 解析 DSL 文件并构建根元素。
func buildFile(path string, env layout.Environment) (layout.Element, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开 DSL 文件 %s: %w", path, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析 DSL 失败: %w", err)
	}
	expr, err := doc.Root()
	if err != nil {
		return nil, err
	}
	root, err := element.Registry().BuildOne(env, expr)
	if err != nil {
		return nil, fmt.Errorf("构建 %s 失败: %w", path, err)
	}
	return root, nil
}

// resolveOutput 确定输出格式与路径：显式格式优先，其次输出文件扩展名，最后为 pdf。
func resolveOutput(input, output, format string) (renderer.Format, string, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(output), ".")
	}
	if format == "" {
		format = string(renderer.FormatPDF)
	}
	f, err := renderer.ParseFormat(format)
	if err != nil {
		return "", "", err
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + string(f)
	}
	return f, output, nil
}

func readJSON(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取数据文件 %s 失败: %w", path, err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("解析 data JSON 失败: %w", err)
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入文件 %s 失败: %w", path, err)
	}
	return nil
}

// applyThemeBackground 只在根布局未显式设置 background-color 时使用主题背景。
func applyThemeBackground(root layout.Element, bg *layout.Color) {
	plot, ok := root.(*layout.Plot)
	if !ok || bg == nil || plot.Config.BackgroundSet {
		return
	}
	plot.Config.Background = bg
}
