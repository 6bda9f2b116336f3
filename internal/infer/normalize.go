package infer

import (
	"strings"

	"github.com/funvibe/funkos/internal/config"
	"github.com/funvibe/funkos/internal/types"
)

// NormalizeAnnotation converts a user-facing annotation to the internal
// descriptor grammar. Accepted forms: the primitives (int, double, float,
// bool), TeamMember, Acc or Acc[double], ViewND[dtype], and the supported
// foreign-numeric kind names (which normalize to their numpy: form).
func NormalizeAnnotation(annotation string) (string, error) {
	switch annotation {
	case config.IntName, config.DoubleName, config.FloatName, config.BoolName:
		return annotation, nil
	case config.TeamMemberName:
		return config.TeamMemberName, nil
	}

	if annotation == "Acc" || strings.HasPrefix(annotation, "Acc[") {
		// the accumulator is always carried at double precision
		return config.AccDouble, nil
	}

	if strings.HasPrefix(annotation, config.ViewMarker) {
		open := strings.Index(annotation, "[")
		if open < 0 || !strings.HasSuffix(annotation, "]") {
			return "", &UnsupportedTypeError{Kind: annotation}
		}
		base := annotation[:open]
		elem := annotation[open+1 : len(annotation)-1]
		if _, ok := types.Parse(elem); !ok {
			return "", &UnsupportedTypeError{Kind: annotation}
		}
		return base + ":" + types.CanonicalKind(elem), nil
	}

	if types.IsSupportedKind(annotation) {
		return config.NumpyPrefix + types.CanonicalKind(annotation), nil
	}

	return "", &UnsupportedTypeError{Kind: annotation}
}
