package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/udisondev/buffcalc/internal/calc"
	"github.com/udisondev/buffcalc/internal/data"
	"github.com/udisondev/buffcalc/internal/state"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	return nil
}

func stateFlags(fs *flag.FlagSet) *stateSource {
	src := &stateSource{}
	fs.StringVar(&src.blob, state.QueryParam, "", "encoded state blob")
	fs.StringVar(&src.rawURL, "url", "", "calculator URL carrying the s0 parameter")
	fs.StringVar(&src.file, "file", "", "JSON state file (- for stdin)")
	return src
}

func runCalc(_ context.Context, e *env, args []string) error {
	fs := newFlagSet("calc")
	src := stateFlags(fs)
	asJSON := fs.Bool("json", false, "print the full report as JSON")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	st, err := e.loadState(*src)
	if err != nil {
		return err
	}
	report, err := calc.Calculate(e.cfg.DefaultBuffs, st, e.opts)
	if err != nil {
		return fmt.Errorf("calculating: %w", err)
	}
	if report.Stats.HasNaN() {
		slog.Warn("some values could not be parsed, results contain NaN", "parse_mode", e.opts.Mode)
	}

	if *asJSON {
		return writeJSON(e.stdout, report)
	}
	writeStats(e.stdout, report.Stats)
	return nil
}

func runEncode(_ context.Context, e *env, args []string) error {
	fs := newFlagSet("encode")
	src := stateFlags(fs)
	base := fs.String("base", "", "print a full URL with this base instead of the bare blob")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if src.file == "" && src.blob == "" && src.rawURL == "" {
		src.file = "-"
	}

	st, err := e.loadState(*src)
	if err != nil {
		return err
	}

	if *base != "" {
		q, err := state.Query(st)
		if err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "%s?%s\n", *base, q.Encode())
		return nil
	}

	blob, err := state.Encode(st)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, blob)
	return nil
}

func runDecode(_ context.Context, e *env, args []string) error {
	fs := newFlagSet("decode")
	src := stateFlags(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if src.blob == "" && src.rawURL == "" {
		return fmt.Errorf("%w: decode needs -%s or -url", errUsage, state.QueryParam)
	}

	st, err := e.loadState(*src)
	if err != nil {
		return err
	}
	return writeJSON(e.stdout, st)
}

func runCompare(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("compare")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	blobs := fs.Args()
	if len(blobs) == 0 {
		return fmt.Errorf("%w: compare needs at least one blob", errUsage)
	}

	builds := make([]calc.NamedState, 0, len(blobs))
	for i, blob := range blobs {
		st, err := state.Decode(blob)
		if err != nil {
			return fmt.Errorf("decoding blob %d: %w", i+1, err)
		}
		name, err := state.Fingerprint(st)
		if err != nil {
			return err
		}
		builds = append(builds, calc.NamedState{Name: name, State: st})
	}

	start := time.Now()
	reports, err := calc.EvaluateAll(ctx, e.cfg.DefaultBuffs, builds, e.opts, e.cfg.Workers)
	if err != nil {
		return fmt.Errorf("comparing builds: %w", err)
	}
	slog.Debug("builds evaluated", "count", len(builds), "workers", e.cfg.Workers, "elapsed", time.Since(start))

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BUILD\tATTACK\tCRIT\tCRIT DMG\tDAMAGE\tNORMAL\tHEAVY\tSKILL\tSUPER")
	for i, r := range reports {
		s := r.Stats
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			builds[i].Name,
			formatValue(s.Attack), formatValue(s.CriticalPer), formatValue(s.CriticalDamage),
			formatValue(s.ExpDamage), formatValue(s.ExpNormalDamage), formatValue(s.ExpHeavyDamage),
			formatValue(s.ExpSkillDamage), formatValue(s.ExpSuperDamage))
	}
	return tw.Flush()
}

func runTables(_ context.Context, e *env, args []string) error {
	fs := newFlagSet("tables")
	ignoreWeak := fs.Bool("ignore-weak", e.cfg.IgnoreWeakBuff, "hide weak buff types")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "BUFF\tLABEL\tSTRONG")
	for _, id := range data.SelectableBuffTypes(*ignoreWeak, data.NumBuffTypes) {
		fmt.Fprintf(tw, "%s\t%s\t%t\n", id, data.BuffLabel(id), data.IsStrong(id))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "SUB STATUS\tLABEL\tSTRONG")
	for _, id := range data.SelectableSubStatuses(*ignoreWeak, data.NumBuffTypes) {
		fmt.Fprintf(tw, "%s\t%s\t%t\n", id, data.BuffLabel(id), data.IsStrong(id))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "COST\tFIXED\tMAIN STATUSES")
	for _, c := range data.Costs {
		fixed := data.MustCostMain(c)
		list, _ := data.MainStatuses(c)
		for n, idx := range data.SelectableMainStatuses(c, *ignoreWeak, -1) {
			col1, col2 := "", ""
			if n == 0 {
				col1 = strconv.Itoa(int(c))
				col2 = formatBuff(fixed)
			}
			fmt.Fprintf(tw, "%s\t%s\t%d: %s\n", col1, col2, idx, formatBuff(list[idx]))
		}
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "SOMETHING\tLABEL\t2 PIECES\t5 PIECES")
	for _, st := range data.Somethings() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", st.ID, data.SomethingLabel(st.ID), formatBuff(st.Effect2), formatBuff(st.Effect5))
	}
	return tw.Flush()
}

func runSave(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("save")
	src := stateFlags(fs)
	name := fs.String("name", "", "build name")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	st, err := e.loadState(*src)
	if err != nil {
		return err
	}
	b, err := e.database.Builds().SaveBuild(ctx, *name, st)
	if err != nil {
		return err
	}
	slog.Info("build saved", "name", b.Name, "fingerprint", b.Fingerprint)
	fmt.Fprintln(e.stdout, b.Fingerprint)
	return nil
}

func runShow(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("show")
	id := fs.String("id", "", "build fingerprint")
	asJSON := fs.Bool("json", false, "print the stored state as JSON")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	b, err := e.database.Builds().GetBuild(ctx, *id)
	if err != nil {
		return err
	}
	if b == nil {
		return fmt.Errorf("build %q not found", *id)
	}
	if *asJSON {
		return writeJSON(e.stdout, b.State)
	}

	report, err := calc.Calculate(e.cfg.DefaultBuffs, b.State, e.opts)
	if err != nil {
		return fmt.Errorf("calculating build %q: %w", b.Name, err)
	}
	blob, err := state.Encode(b.State)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s (%s), updated %s\n", b.Name, b.Fingerprint, b.UpdatedAt.Format(time.RFC3339))
	fmt.Fprintf(e.stdout, "%s=%s\n\n", state.QueryParam, blob)
	writeStats(e.stdout, report.Stats)
	return nil
}

func runList(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("list")
	limit := fs.Int("limit", 0, "maximum number of builds (0 = default)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	builds, err := e.database.Builds().ListBuilds(ctx, *limit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FINGERPRINT\tNAME\tUPDATED")
	for _, b := range builds {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Fingerprint, b.Name, b.UpdatedAt.Format(time.DateTime))
	}
	return tw.Flush()
}

func runDelete(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet("delete")
	id := fs.String("id", "", "build fingerprint")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	ok, err := e.database.Builds().DeleteBuild(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("build %q not found", *id)
	}
	slog.Info("build deleted", "fingerprint", *id)
	return nil
}

// statLines — порядок и подписи строк вывода calc.
func statLines(s calc.Stats) []struct {
	label string
	value float64
} {
	return []struct {
		label string
		value float64
	}{
		{"基礎攻撃力", s.BaseAttack},
		{"音骸攻撃力", s.SomeAttack},
		{"攻撃力", s.Attack},
		{"クリティカル", s.CriticalPer},
		{"クリティカルダメージ", s.CriticalDamage},
		{"属性ダメージアップ", s.EltDamagePer},
		{"期待値", s.ExpDamage},
		{"通常攻撃期待値", s.ExpNormalDamage},
		{"重撃期待値", s.ExpHeavyDamage},
		{"共鳴スキル期待値", s.ExpSkillDamage},
		{"共鳴解放期待値", s.ExpSuperDamage},
	}
}

func writeStats(w io.Writer, s calc.Stats) {
	for _, line := range statLines(s) {
		fmt.Fprintf(w, "%s: %s\n", line.label, formatValue(line.value))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBuff(b data.Buff) string {
	return fmt.Sprintf("%s %s", b.Type, formatValue(b.Value))
}
