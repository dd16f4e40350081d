package catalogue

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
)

// idNamespace seeds the deterministic resource identifiers. Synthesis is a
// pure function of the resolved configuration, so identifiers must be stable
// across runs for the same inputs.
var idNamespace = uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

// resourceID derives a stable identifier for one logical resource.
func resourceID(parts ...string) string {
	return uuid.NewSHA1(idNamespace, []byte(strings.Join(parts, "/"))).String()
}

// shortID is used where providers embed a short token rather than a full
// identifier, e.g. in generated hostnames.
func shortID(parts ...string) string {
	return strings.ReplaceAll(resourceID(parts...), "-", "")[:12]
}

// resourceName builds the "<app>-<suffix>-<kind>" physical name, normalized
// to kebab case so arbitrary caller-supplied names stay provider-safe.
func resourceName(app, suffix, kind string) string {
	return strcase.ToKebab(fmt.Sprintf("%s-%s-%s", app, suffix, kind))
}
