package catalogue

import "ams-coverage/core/reconcile"

// TableName is the database table holding the managed rule catalogue.
const TableName = "managed_config_rules"

// requiredColumns are the columns DatabaseSource reads.
var requiredColumns = []string{"id", "name", "source_identifier", "doc_link", "service"}

// RuleRecord is the database row of a catalogue rule.
// Identifiers are not unique: duplicates in the catalogue are preserved.
type RuleRecord struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"size:255;not null;default:''"`
	SourceIdentifier string `gorm:"size:255;not null;default:'';index"`
	DocLink          string `gorm:"size:1024;not null;default:''"`
	Service          string `gorm:"size:255;not null;default:''"`
}

// TableName implements gorm's tabler interface.
func (RuleRecord) TableName() string {
	return TableName
}

// ToRule converts the row into the domain type.
func (r RuleRecord) ToRule() reconcile.CatalogueRule {
	return reconcile.CatalogueRule{
		Name:             r.Name,
		SourceIdentifier: r.SourceIdentifier,
		DocLink:          r.DocLink,
		Service:          r.Service,
	}
}

// FromRule converts a domain rule into a row.
func FromRule(rule reconcile.CatalogueRule) RuleRecord {
	return RuleRecord{
		Name:             rule.Name,
		SourceIdentifier: rule.SourceIdentifier,
		DocLink:          rule.DocLink,
		Service:          rule.Service,
	}
}
