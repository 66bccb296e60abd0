// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConceptEventsColumns holds the columns for the "concept_events" table.
	ConceptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// ConceptEventsTable holds the schema information for the "concept_events" table.
	ConceptEventsTable = &schema.Table{
		Name:       "concept_events",
		Columns:    ConceptEventsColumns,
		PrimaryKey: []*schema.Column{ConceptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conceptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ConceptEventsColumns[1]},
			},
			{
				Name:    "conceptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ConceptEventsColumns[2]},
			},
			{
				Name:    "conceptevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{ConceptEventsColumns[3]},
			},
			{
				Name:    "conceptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ConceptEventsColumns[8]},
			},
		},
	}
	// ExchangeEventsColumns holds the columns for the "exchange_events" table.
	ExchangeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "text", Type: field.TypeString},
		{Name: "example", Type: field.TypeString, Default: ""},
		{Name: "grade", Type: field.TypeString, Default: ""},
		{Name: "applies_transfer", Type: field.TypeBool, Default: false},
		{Name: "probe", Type: field.TypeString, Default: ""},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "simplified", Type: field.TypeBool, Default: false},
		{Name: "transfer", Type: field.TypeBool, Default: false},
		{Name: "decision", Type: field.TypeString, Default: ""},
	}
	// ExchangeEventsTable holds the schema information for the "exchange_events" table.
	ExchangeEventsTable = &schema.Table{
		Name:       "exchange_events",
		Columns:    ExchangeEventsColumns,
		PrimaryKey: []*schema.Column{ExchangeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exchangeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExchangeEventsColumns[1]},
			},
			{
				Name:    "exchangeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExchangeEventsColumns[2]},
			},
			{
				Name:    "exchangeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExchangeEventsColumns[3]},
			},
			{
				Name:    "exchangeevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{ExchangeEventsColumns[4]},
			},
			{
				Name:    "exchangeevent_session_id_role",
				Unique:  false,
				Columns: []*schema.Column{ExchangeEventsColumns[3], ExchangeEventsColumns[5]},
			},
		},
	}
	// OracleRequestEventsColumns holds the columns for the "oracle_request_events" table.
	OracleRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// OracleRequestEventsTable holds the schema information for the "oracle_request_events" table.
	OracleRequestEventsTable = &schema.Table{
		Name:       "oracle_request_events",
		Columns:    OracleRequestEventsColumns,
		PrimaryKey: []*schema.Column{OracleRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oraclerequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[1]},
			},
			{
				Name:    "oraclerequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[2]},
			},
			{
				Name:    "oraclerequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[3]},
			},
			{
				Name:    "oraclerequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "total_exchanges", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "mastered", Type: field.TypeJSON, Nullable: true},
		{Name: "stalled", Type: field.TypeJSON, Nullable: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConceptEventsTable,
		ExchangeEventsTable,
		OracleRequestEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
