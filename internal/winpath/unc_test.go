package winpath

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeUNC(t *testing.T) {
	tests := map[string]string{
		`\\srv\share`:         "//srv/share",
		`\\srv\share\`:        "//srv/share",
		"//srv/share//":       "//srv/share",
		`\\srv\share\a\b.txt`: "//srv/share/a/b.txt",
		"srv/share":           "//srv/share",
		"//":                  "//",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeUNC(in), in)
	}
}

func TestParseUNCShare(t *testing.T) {
	server, share, rest, ok := ParseUNCShare("//srv/share/a/b")
	assert.True(t, ok)
	assert.Equal(t, "srv", server)
	assert.Equal(t, "share", share)
	assert.Equal(t, "/a/b", rest)

	_, _, rest, ok = ParseUNCShare("//srv/share")
	assert.True(t, ok)
	assert.Equal(t, "", rest)

	for _, bad := range []string{"/srv/share", "//srv", "///share", "//srv/", "srv/share"} {
		_, _, _, ok := ParseUNCShare(bad)
		assert.False(t, ok, bad)
	}
}

func TestNormalizeUNCRoot(t *testing.T) {
	assert.Equal(t, `\\srv\share`, NormalizeUNCRoot(`\\srv\share`))
	assert.Equal(t, `\\srv\share`, NormalizeUNCRoot(`\srv\share`))
	assert.Equal(t, `\\srv\share`, NormalizeUNCRoot("//srv/share"))
	assert.Equal(t, `\\srv\share`, NormalizeUNCRoot(`srv\share`))
	assert.Equal(t, "", NormalizeUNCRoot(""))
}

func TestSMBURI(t *testing.T) {
	uri, ok := SMBURI("//nas/Public Docs/Rapport été #1.pdf")
	assert.True(t, ok)
	assert.Equal(t, "smb://nas/Public%20Docs/Rapport%20%C3%A9t%C3%A9%20%231.pdf", uri)

	uri, ok = SMBURI("//nas/share")
	assert.True(t, ok)
	assert.Equal(t, "smb://nas/share", uri)

	_, ok = SMBURI("//nas")
	assert.False(t, ok)
}

func TestHasPathPrefix(t *testing.T) {
	assert.True(t, HasPathPrefix("//srv/share", "//srv/share", false))
	assert.True(t, HasPathPrefix("//srv/share/x", "//srv/share", false))
	assert.False(t, HasPathPrefix("//srv/shareX", "//srv/share", false))
	assert.True(t, HasPathPrefix("//SRV/Share/x", "//srv/share", true))
	assert.False(t, HasPathPrefix("//SRV/Share/x", "//srv/share", false))
	assert.True(t, HasPathPrefix("/run/media/me", "/run/media/", false))
}

func TestUNCRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	segment := gen.RegexMatch(`[A-Za-z0-9][A-Za-z0-9 ._$-]{0,15}`)

	properties.Property("parse(normalize(s)) recovers server and share", prop.ForAll(
		func(server, share string, rest []string, backslash, trailing bool) bool {
			parts := append([]string{server, share}, rest...)
			sep := "/"
			if backslash {
				sep = `\`
			}
			s := sep + sep + strings.Join(parts, sep)
			if trailing {
				s += sep
			}
			gotServer, gotShare, _, ok := ParseUNCShare(NormalizeUNC(s))
			return ok && gotServer == server && gotShare == share
		},
		segment,
		segment,
		gen.SliceOfN(3, segment),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
