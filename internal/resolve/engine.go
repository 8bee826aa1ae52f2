package resolve

import (
	"context"
	"strings"

	"github.com/open-lnk/open-lnk/internal/assist"
	"github.com/open-lnk/open-lnk/internal/linkcache"
	"github.com/open-lnk/open-lnk/internal/logging"
	"github.com/open-lnk/open-lnk/internal/mapping"
	"github.com/open-lnk/open-lnk/internal/mounts"
	"github.com/open-lnk/open-lnk/internal/platform"
	"github.com/open-lnk/open-lnk/internal/shares"
	"github.com/open-lnk/open-lnk/internal/winpath"
)

// Engine resolves shortcut targets. Set the exported collaborators before
// the first call to Resolve; they are not modified afterwards.
type Engine struct {
	Options Options

	Table *mapping.Table
	// Cache may be nil.
	Cache  *linkcache.Cache
	Mounts mounts.Source
	// Assistant may be nil, which skips the assist stages.
	Assistant assist.Assistant

	Exists func(string) bool
	IsDir  func(string) bool
	Log    *logging.Logger
}

// New returns an Engine reading the live system.
func New(opts Options) *Engine {
	return &Engine{
		Options: opts,
		Table:   &mapping.Table{},
		Mounts:  mounts.System{},
		Exists:  platform.Exists,
		IsDir:   platform.IsDir,
		Log:     logging.Nop(),
	}
}

// job carries the per-shortcut facts shared by every stage.
type job struct {
	target Target
	path   winpath.Path
	posix  string
	rest   string
}

func (e *Engine) gvfs() shares.GVFS {
	dir := e.Options.GVFSDir
	if dir == "" {
		dir = shares.DefaultGVFSDir()
	}
	return shares.GVFS{Dir: dir, Exists: e.Exists}
}

func (e *Engine) cifs() shares.CIFS {
	return shares.CIFS{Source: e.Mounts, Exists: e.Exists}
}

// Resolve runs the pipeline for t. On failure the Result has State Failed
// and the error is an *UnresolvedError.
func (e *Engine) Resolve(ctx context.Context, t Target) (Result, error) {
	p := t.Path()
	j := &job{target: t, path: p, posix: winpath.ToSlash(t.Windows), rest: p.Rest}

	for stage := First(p.Kind); stage != StageFail; stage = Next(p.Kind, stage) {
		if err := ctx.Err(); err != nil {
			return Result{State: Failed, Stage: stage}, err
		}
		path, prefix, ok := e.try(ctx, stage, j)
		e.Log.Stage(string(stage), t.Windows, path)
		if !ok {
			continue
		}
		e.remember(stage, j, prefix)
		return Result{State: stage.State(), Stage: stage, Path: path, Prefix: prefix}, nil
	}

	e.Log.Stage(string(StageFail), t.Windows, "")
	return Result{State: Failed, Stage: StageFail}, &UnresolvedError{Target: t}
}

// try runs one stage. It returns the candidate, the prefix it was built
// on when known, and whether the stage succeeded.
func (e *Engine) try(ctx context.Context, stage Stage, j *job) (string, string, bool) {
	switch stage {
	case StageRawPosix:
		return j.posix, "", e.Exists(j.posix)

	case StageCacheUNC, StageCacheDrive:
		return e.fromCache(j)

	case StageUNCTable:
		path, ok := e.Table.ResolveUNC(j.posix, e.Exists)
		return path, "", ok

	case StageUNCGVFS:
		path, ok := e.gvfs().Locate(j.posix)
		return path, trimRest(path, j.rest), ok

	case StageUNCCIFS:
		path, ok := e.cifs().Locate(ctx, j.posix)
		return path, trimRest(path, j.rest), ok

	case StageUNCSMB:
		uri, ok := winpath.SMBURI(winpath.NormalizeUNC(j.posix))
		return uri, "", ok

	case StageDriveTable:
		path, ok := e.Table.ResolveDrive(j.path, e.Exists)
		return path, "", ok

	case StageDriveMounts:
		ms, err := e.Mounts.Mounts(ctx)
		if err != nil {
			e.Log.Warnf("%v", err)
			return "", "", false
		}
		scorer := mounts.Scorer{MinScore: e.Options.MinScore, MinMargin: e.Options.MinMargin}
		best, ok := scorer.Best(ms, j.rest, e.Exists)
		return best.Path, best.Mount.Mountpoint, ok

	case StageUNCAssist, StageDriveAssist:
		return e.assisted(ctx, j)
	}
	return "", "", false
}

func (e *Engine) fromCache(j *job) (string, string, bool) {
	if e.Cache == nil || j.target.Key == "" {
		return "", "", false
	}
	if j.path.Kind == winpath.UNC && !j.path.HasShare() {
		return "", "", false
	}
	prefix, ok, err := e.Cache.Get(j.target.Key)
	if err != nil {
		e.Log.Warnf("%v", err)
		return "", "", false
	}
	if !ok {
		return "", "", false
	}
	cand := winpath.JoinPrefix(prefix, j.rest)
	return cand, prefix, e.Exists(cand)
}

// remember records heuristic guesses in the link cache.
func (e *Engine) remember(stage Stage, j *job, prefix string) {
	switch stage.State() {
	case ShareLocated, MountMatched:
	default:
		return
	}
	if !e.Options.CacheHeuristics || e.Cache == nil || j.target.Key == "" || prefix == "" {
		return
	}
	if err := e.Cache.Set(j.target.Key, prefix); err != nil {
		e.Log.Warnf("caching prefix for %s: %v", j.target.Key, err)
	}
}

// trimRest recovers the prefix of path, or "" when path does not end in rest.
func trimRest(path, rest string) string {
	if path == "" {
		return ""
	}
	if rest == "" {
		return path
	}
	if !strings.HasSuffix(path, rest) {
		return ""
	}
	return winpath.TrimTrailingSlashes(strings.TrimSuffix(path, rest))
}
