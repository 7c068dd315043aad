package compose

import "github.com/google/uuid"

// kernelNamespace is the fixed namespace for deriving session identifiers.
// Changing it would re-identify every installed kernel, so it never changes.
var kernelNamespace = uuid.MustParse("0442b93a-4b56-4a0d-9a31-7d6e13b1fd6a")

// KernelID derives the stable session identifier from the display name. Equal
// display names always produce the same identifier; nothing else feeds into
// identity.
func KernelID(displayName string) string {
	return uuid.NewSHA1(kernelNamespace, []byte(displayName)).String()
}
