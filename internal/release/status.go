package release

type Status int

const (
  Active Status = iota
  NotYetDeployed
  OlderRelease
)

const (
  MinVersion = 1
  MaxVersion = 5
)

// Classify compares the configured release against a requested version.
func Classify(release, version int) Status {
  switch {
  case release == version:
    return Active
  case release < version:
    return NotYetDeployed
  default:
    return OlderRelease
  }
}

func (s Status) String() string {
  switch s {
  case Active:
    return "ACTIVE"
  case NotYetDeployed:
    return "NOT_YET_DEPLOYED"
  case OlderRelease:
    return "OLDER_RELEASE"
  }
  return "UNKNOWN"
}

// Label is the human wording shown on the status page.
func (s Status) Label() string {
  switch s {
  case Active:
    return "ACTIVE HERE"
  case NotYetDeployed:
    return "NOT YET DEPLOYED"
  case OlderRelease:
    return "OLDER RELEASE"
  }
  return ""
}

func (s Status) Color() string {
  switch s {
  case Active:
    return "green"
  case NotYetDeployed:
    return "orange"
  }
  return "gray"
}

func ValidVersion(v int) bool { return v >= MinVersion && v <= MaxVersion }
