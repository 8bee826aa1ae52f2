package resolve

import (
	"context"
	"fmt"

	"github.com/open-lnk/open-lnk/internal/assist"
	"github.com/open-lnk/open-lnk/internal/mapping"
	"github.com/open-lnk/open-lnk/internal/mounts"
	"github.com/open-lnk/open-lnk/internal/winpath"
)

// assisted asks the human for a prefix until one yields an existing path,
// the human cancels, or the attempt budget runs out. A confirmed prefix is
// saved to the mapping file and the link cache.
func (e *Engine) assisted(ctx context.Context, j *job) (string, string, bool) {
	if e.Assistant == nil || j.target.Key == "" {
		return "", "", false
	}
	if j.path.Kind == winpath.UNC && !j.path.HasShare() {
		return "", "", false
	}

	req := e.request(ctx, j)
	attempts := e.Options.MaxAssistAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAssistAttempts
	}

	for i := 0; i < attempts; i++ {
		choice := assist.Choice{Action: assist.Manual}
		if len(req.Candidates) > 0 {
			var err error
			choice, err = e.Assistant.Choose(ctx, req)
			if err != nil {
				e.Log.Warnf("assistant %s: %v", e.Assistant.Name(), err)
				return "", "", false
			}
		}

		var prefix string
		switch choice.Action {
		case assist.Cancel:
			return "", "", false
		case assist.Pick:
			prefix = choice.Prefix
		case assist.Manual:
			dir, ok, err := e.Assistant.PickDirectory(ctx, "Select mount folder")
			if err != nil {
				e.Log.Warnf("assistant %s: %v", e.Assistant.Name(), err)
				return "", "", false
			}
			if !ok {
				if len(req.Candidates) == 0 {
					return "", "", false
				}
				req.LastError = "Manual selection cancelled."
				continue
			}
			prefix = dir
		}

		prefix = winpath.TrimTrailingSlashes(prefix)
		if mapping.CheckPrefix(prefix) != nil || !e.IsDir(prefix) {
			req.LastError = "Invalid mount prefix:\n" + prefix
			continue
		}
		e.Log.Debugf("assist: selected prefix=%s", prefix)

		cand := winpath.JoinPrefix(prefix, j.rest)
		if !e.Exists(cand) {
			e.Log.Debugf("assist: preview missing: %s", cand)
			req.LastError = fmt.Sprintf("Selected Linux prefix:\n%s\n\nMerged preview does not exist:\n%s", prefix, cand)
			continue
		}

		e.saveAssisted(j, prefix)
		return cand, prefix, true
	}
	return "", "", false
}

func (e *Engine) request(ctx context.Context, j *job) assist.Request {
	req := assist.Request{
		WindowsTarget: j.target.Windows,
		Rest:          j.rest,
		MappingFile:   e.Options.MappingFile,
	}
	if j.target.Record != nil {
		req.WindowsSuffix = j.target.Record.Suffix()
	}

	var known []string
	if j.path.Kind == winpath.UNC {
		req.Share = j.path.Root()
		known = e.shareRoots(ctx, j)
	} else {
		req.Drive = j.path.Root()
	}

	pool := e.mountpoints(ctx)
	if entries, err := e.gvfs().Entries(); err == nil {
		for _, en := range entries {
			pool = append(pool, en.Path)
		}
	}

	seen := make(map[string]bool)
	for _, p := range append(known, mounts.RankPrefixes(pool, j.rest, e.Exists)...) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		req.Candidates = append(req.Candidates, p)
	}
	return req
}

// shareRoots lists prefixes already known for the share: the mapping rule,
// the session mount and the CIFS mount.
func (e *Engine) shareRoots(ctx context.Context, j *job) []string {
	var out []string
	root := j.path.Root()
	if en, rest, ok := e.Table.MatchUNC(root); ok {
		if p := winpath.JoinPrefix(en.Prefix, rest); e.IsDir(p) {
			out = append(out, p)
		}
	}
	if p, ok := e.gvfs().ShareRoot(j.path.Server, j.path.Share); ok {
		out = append(out, p)
	}
	if p, ok := e.cifs().ShareRoot(ctx, j.path.Server, j.path.Share); ok {
		out = append(out, p)
	}
	return out
}

func (e *Engine) mountpoints(ctx context.Context) []string {
	ms, err := e.Mounts.Mounts(ctx)
	if err != nil {
		e.Log.Warnf("%v", err)
		return nil
	}
	return mounts.Mountpoints(ms)
}

func (e *Engine) saveAssisted(j *job, prefix string) {
	if e.Options.SaveMappings && e.Options.MappingFile != "" {
		var err error
		if j.path.Kind == winpath.UNC {
			err = mapping.AppendUNC(e.Options.MappingFile, j.path.Root(), prefix)
		} else {
			err = mapping.AppendDrive(e.Options.MappingFile, j.path.Drive, prefix)
		}
		if err != nil {
			e.Log.Warnf("saving mapping: %v", err)
		} else {
			e.Log.Infof("saved mapping %s=%s to %s", j.path.Root(), prefix, e.Options.MappingFile)
		}
	}
	if e.Cache != nil {
		if err := e.Cache.Set(j.target.Key, prefix); err != nil {
			e.Log.Warnf("caching prefix for %s: %v", j.target.Key, err)
		}
	}
}
