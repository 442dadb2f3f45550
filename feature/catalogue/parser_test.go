package catalogue

import (
	"strings"
	"testing"

	"ams-coverage/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"S3 versioning,S3_BUCKET_VERSIONING_ENABLED,https://docs/s3,S3",
		"three,fields,only",
		"  Root MFA,ROOT_ACCOUNT_MFA_ENABLED,https://docs/root,IAM  \r",
		"",
		"a,b,c,d,e",
		"Duplicate,S3_BUCKET_VERSIONING_ENABLED,https://docs/s3-again,S3",
	}, "\n")

	rules, skipped, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, skipped)
	assert.Equal(t, []reconcile.CatalogueRule{
		{Name: "S3 versioning", SourceIdentifier: "S3_BUCKET_VERSIONING_ENABLED", DocLink: "https://docs/s3", Service: "S3"},
		{Name: "Root MFA", SourceIdentifier: "ROOT_ACCOUNT_MFA_ENABLED", DocLink: "https://docs/root", Service: "IAM"},
		{Name: "Duplicate", SourceIdentifier: "S3_BUCKET_VERSIONING_ENABLED", DocLink: "https://docs/s3-again", Service: "S3"},
	}, rules)
}

func TestParse_FieldsAreNotTrimmedIndividually(t *testing.T) {
	rules, _, err := Parse(strings.NewReader("name , ID ,link, svc"))
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "name ", rules[0].Name)
	assert.Equal(t, " ID ", rules[0].SourceIdentifier)
}

func TestParse_Empty(t *testing.T) {
	rules, skipped, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rules)
	assert.Zero(t, skipped)
}
