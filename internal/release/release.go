package release

import (
  "embed"
  "io/fs"
  "os"
  "path/filepath"
  "strconv"
  "strings"

  "github.com/magiconair/properties"
)

const (
  DefaultArtifactVersion = "UNKNOWN"
  DefaultReleaseNumber   = 1

  PropertiesFile = "app.properties"
  VersionKey     = "app.version"
  ReleaseEnv     = "RELEASE_NUMBER"
)

//go:embed app.properties
var bundled embed.FS

// Bundled returns the build metadata shipped inside the binary.
func Bundled() fs.FS { return bundled }

// Info is resolved once at startup and never mutated afterwards.
type Info struct {
  artifactVersion string
  releaseNumber   int
}

func NewInfo(artifactVersion string, releaseNumber int) Info {
  if strings.TrimSpace(artifactVersion) == "" { artifactVersion = DefaultArtifactVersion }
  if releaseNumber <= 0 { releaseNumber = DefaultReleaseNumber }
  return Info{artifactVersion: strings.TrimSpace(artifactVersion), releaseNumber: releaseNumber}
}

func (i Info) ArtifactVersion() string {
  if i.artifactVersion == "" { return DefaultArtifactVersion }
  return i.artifactVersion
}

func (i Info) ReleaseNumber() int {
  if i.releaseNumber <= 0 { return DefaultReleaseNumber }
  return i.releaseNumber
}

// Resolve reads the artifact version from name in fsys and the release number
// via getenv. It always succeeds.
func Resolve(fsys fs.FS, name string, getenv func(string) string) Info {
  return NewInfo(artifactVersion(fsys, name), ReleaseNumberFromEnv(getenv))
}

// ResolveFromEnv uses the bundled properties unless path points at a file.
func ResolveFromEnv(path string) Info {
  if path == "" { return Resolve(Bundled(), PropertiesFile, os.Getenv) }
  return Resolve(os.DirFS(filepath.Dir(path)), filepath.Base(path), os.Getenv)
}

func artifactVersion(fsys fs.FS, name string) string {
  if fsys == nil { return DefaultArtifactVersion }
  raw, err := fs.ReadFile(fsys, name)
  if err != nil { return DefaultArtifactVersion }
  // .properties files are Latin-1; non-Latin text arrives as \uXXXX escapes.
  l := &properties.Loader{Encoding: properties.ISO_8859_1, DisableExpansion: true}
  p, err := l.LoadBytes(raw)
  if err != nil { return DefaultArtifactVersion }
  v, ok := p.Get(VersionKey)
  if !ok { return DefaultArtifactVersion }
  v = strings.TrimSpace(v)
  if v == "" { return DefaultArtifactVersion }
  return v
}

func ReleaseNumberFromEnv(getenv func(string) string) int {
  if getenv == nil { return DefaultReleaseNumber }
  raw := strings.TrimSpace(getenv(ReleaseEnv))
  if raw == "" { return DefaultReleaseNumber }
  n, err := strconv.ParseInt(raw, 10, 32)
  if err != nil || n <= 0 { return DefaultReleaseNumber }
  return int(n)
}
