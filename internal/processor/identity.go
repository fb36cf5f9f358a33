package processor

import (
	"strconv"

	"github.com/google/uuid"
)

// NamespaceRecordIdentity is the UUID v5 namespace for record identities,
// derived from "attrread/record-identity/v1" under the URL namespace.
var NamespaceRecordIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("attrread/record-identity/v1"))

// RecordID returns a deterministic UUID v5 for the given input digest and
// 1-based line. The same file always yields the same IDs.
func RecordID(digest string, line int) uuid.UUID {
	return uuid.NewSHA1(NamespaceRecordIdentity, []byte(digest+":"+strconv.Itoa(line)))
}
