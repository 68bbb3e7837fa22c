package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ByLCY/chartbox/binding"
	"github.com/ByLCY/chartbox/domain"
	"github.com/ByLCY/chartbox/dsl"
)

// seriesOpts 选择数据来源：位置参数，或 --data 文件中的 --path。
type seriesOpts struct {
	domain   string
	data     string
	path     string
	snapZero bool
}

func (o *seriesOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.domain, "domain", "d", "(domain)", "domain options, e.g. \"(domain scale linear padding 0.1)\"")
	cmd.Flags().StringVar(&o.data, "data", "", "JSON data file")
	cmd.Flags().StringVar(&o.path, "path", "", "path of the series inside --data, e.g. series.temp")
	cmd.Flags().BoolVar(&o.snapZero, "snap-zero", false, "extend the fitted range to include zero")
}

// series 返回待拟合的数据序列。
func (o *seriesOpts) series(args []string) (domain.Series, error) {
	if o.data == "" {
		if o.path != "" {
			return nil, fmt.Errorf("--path 需要同时指定 --data")
		}
		return domain.Series(args), nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("--data 与位置参数不能同时使用")
	}
	data, err := readJSON(o.data)
	if err != nil {
		return nil, err
	}
	return binding.ResolveSeries(data, o.path)
}

// fitted 解析 --domain 并对 series 执行拟合。
func (o *seriesOpts) fitted(series domain.Series) (*domain.Config, error) {
	expr, err := dsl.ParseExpr(o.domain)
	if err != nil {
		return nil, fmt.Errorf("解析 --domain 失败: %w", err)
	}
	if head := expr.Head(); head != "domain" {
		return nil, fmt.Errorf("--domain 期望 (domain ...)，实际为 %s", expr.Source())
	}
	cfg := domain.NewConfig()
	if err := domain.Configure(expr.Args(), cfg); err != nil {
		return nil, err
	}
	if err := domain.Fit(series, cfg, o.snapZero); err != nil {
		return nil, err
	}
	return cfg, nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

func printDomain(w io.Writer, cfg *domain.Config) {
	fmt.Fprintf(w, "scale: %s\n", cfg.Kind)
	if cfg.Kind == domain.KindCategorical {
		fmt.Fprintf(w, "categories: %s\n", strings.Join(cfg.Categories, ", "))
		return
	}
	lo, hi := cfg.Bounds()
	fmt.Fprintf(w, "min: %s\nmax: %s\n", formatFloat(lo), formatFloat(hi))
	if cfg.Inverted {
		fmt.Fprintln(w, "inverted: true")
	}
}

func newFitCmd() *cobra.Command {
	var opts seriesOpts

	cmd := &cobra.Command{
		Use:   "fit [value...]",
		Short: "Fit a domain to a data series and print each value's position",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			series, err := opts.series(args)
			if err != nil {
				return err
			}
			cfg, err := opts.fitted(series)
			if err != nil {
				return err
			}
			positions, err := domain.Translate(*cfg, series)
			if err != nil {
				return err
			}
			logger.Debug("Fitted domain", "kind", cfg.Kind, "values", len(series))

			out := cmd.OutOrStdout()
			printDomain(out, cfg)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VALUE\tPOSITION")
			for i, v := range series {
				fmt.Fprintf(tw, "%s\t%s\n", v, formatFloat(positions[i]))
			}
			return tw.Flush()
		},
	}
	opts.register(cmd)
	return cmd
}

func newTicksCmd() *cobra.Command {
	var (
		opts     seriesOpts
		maxTicks int
	)

	cmd := &cobra.Command{
		Use:   "ticks [value...]",
		Short: "Print tick labels and positions for a fitted domain",
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := opts.series(args)
			if err != nil {
				return err
			}
			cfg, err := opts.fitted(series)
			if err != nil {
				return err
			}
			ticks, err := domain.Ticks(*cfg, maxTicks)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LABEL\tPOSITION")
			for _, tick := range ticks {
				fmt.Fprintf(tw, "%s\t%s\n", tick.Label, formatFloat(tick.Position))
			}
			return tw.Flush()
		},
	}
	opts.register(cmd)
	cmd.Flags().IntVarP(&maxTicks, "max", "n", 10, "maximum number of ticks; categorical labels are thinned to fit")
	return cmd
}
