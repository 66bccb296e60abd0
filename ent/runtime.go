// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/socralabs/socra/ent/conceptevent"
	"github.com/socralabs/socra/ent/exchangeevent"
	"github.com/socralabs/socra/ent/oraclerequestevent"
	"github.com/socralabs/socra/ent/schema"
	"github.com/socralabs/socra/ent/sessionevent"
	"github.com/socralabs/socra/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	concepteventMixin := schema.ConceptEvent{}.Mixin()
	concepteventMixinFields0 := concepteventMixin[0].Fields()
	_ = concepteventMixinFields0
	concepteventFields := schema.ConceptEvent{}.Fields()
	_ = concepteventFields
	// concepteventDescTimestamp is the schema descriptor for timestamp field.
	concepteventDescTimestamp := concepteventMixinFields0[1].Descriptor()
	// conceptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	conceptevent.DefaultTimestamp = concepteventDescTimestamp.Default.(func() time.Time)
	// concepteventDescConceptID is the schema descriptor for concept_id field.
	concepteventDescConceptID := concepteventFields[0].Descriptor()
	// conceptevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	conceptevent.ConceptIDValidator = concepteventDescConceptID.Validators[0].(func(string) error)
	// concepteventDescFromStatus is the schema descriptor for from_status field.
	concepteventDescFromStatus := concepteventFields[1].Descriptor()
	// conceptevent.FromStatusValidator is a validator for the "from_status" field. It is called by the builders before save.
	conceptevent.FromStatusValidator = concepteventDescFromStatus.Validators[0].(func(string) error)
	// concepteventDescToStatus is the schema descriptor for to_status field.
	concepteventDescToStatus := concepteventFields[2].Descriptor()
	// conceptevent.ToStatusValidator is a validator for the "to_status" field. It is called by the builders before save.
	conceptevent.ToStatusValidator = concepteventDescToStatus.Validators[0].(func(string) error)
	// concepteventDescTrigger is the schema descriptor for trigger field.
	concepteventDescTrigger := concepteventFields[3].Descriptor()
	// conceptevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	conceptevent.TriggerValidator = concepteventDescTrigger.Validators[0].(func(string) error)
	// concepteventDescDepth is the schema descriptor for depth field.
	concepteventDescDepth := concepteventFields[4].Descriptor()
	// conceptevent.DefaultDepth holds the default value on creation for the depth field.
	conceptevent.DefaultDepth = concepteventDescDepth.Default.(int)
	exchangeeventMixin := schema.ExchangeEvent{}.Mixin()
	exchangeeventMixinFields0 := exchangeeventMixin[0].Fields()
	_ = exchangeeventMixinFields0
	exchangeeventFields := schema.ExchangeEvent{}.Fields()
	_ = exchangeeventFields
	// exchangeeventDescTimestamp is the schema descriptor for timestamp field.
	exchangeeventDescTimestamp := exchangeeventMixinFields0[1].Descriptor()
	// exchangeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	exchangeevent.DefaultTimestamp = exchangeeventDescTimestamp.Default.(func() time.Time)
	// exchangeeventDescSessionID is the schema descriptor for session_id field.
	exchangeeventDescSessionID := exchangeeventFields[0].Descriptor()
	// exchangeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	exchangeevent.SessionIDValidator = exchangeeventDescSessionID.Validators[0].(func(string) error)
	// exchangeeventDescConceptID is the schema descriptor for concept_id field.
	exchangeeventDescConceptID := exchangeeventFields[1].Descriptor()
	// exchangeevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	exchangeevent.ConceptIDValidator = exchangeeventDescConceptID.Validators[0].(func(string) error)
	// exchangeeventDescRole is the schema descriptor for role field.
	exchangeeventDescRole := exchangeeventFields[2].Descriptor()
	// exchangeevent.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	exchangeevent.RoleValidator = exchangeeventDescRole.Validators[0].(func(string) error)
	// exchangeeventDescText is the schema descriptor for text field.
	exchangeeventDescText := exchangeeventFields[3].Descriptor()
	// exchangeevent.TextValidator is a validator for the "text" field. It is called by the builders before save.
	exchangeevent.TextValidator = exchangeeventDescText.Validators[0].(func(string) error)
	// exchangeeventDescExample is the schema descriptor for example field.
	exchangeeventDescExample := exchangeeventFields[4].Descriptor()
	// exchangeevent.DefaultExample holds the default value on creation for the example field.
	exchangeevent.DefaultExample = exchangeeventDescExample.Default.(string)
	// exchangeeventDescGrade is the schema descriptor for grade field.
	exchangeeventDescGrade := exchangeeventFields[5].Descriptor()
	// exchangeevent.DefaultGrade holds the default value on creation for the grade field.
	exchangeevent.DefaultGrade = exchangeeventDescGrade.Default.(string)
	// exchangeeventDescAppliesTransfer is the schema descriptor for applies_transfer field.
	exchangeeventDescAppliesTransfer := exchangeeventFields[6].Descriptor()
	// exchangeevent.DefaultAppliesTransfer holds the default value on creation for the applies_transfer field.
	exchangeevent.DefaultAppliesTransfer = exchangeeventDescAppliesTransfer.Default.(bool)
	// exchangeeventDescProbe is the schema descriptor for probe field.
	exchangeeventDescProbe := exchangeeventFields[7].Descriptor()
	// exchangeevent.DefaultProbe holds the default value on creation for the probe field.
	exchangeevent.DefaultProbe = exchangeeventDescProbe.Default.(string)
	// exchangeeventDescDepth is the schema descriptor for depth field.
	exchangeeventDescDepth := exchangeeventFields[8].Descriptor()
	// exchangeevent.DefaultDepth holds the default value on creation for the depth field.
	exchangeevent.DefaultDepth = exchangeeventDescDepth.Default.(int)
	// exchangeeventDescSimplified is the schema descriptor for simplified field.
	exchangeeventDescSimplified := exchangeeventFields[9].Descriptor()
	// exchangeevent.DefaultSimplified holds the default value on creation for the simplified field.
	exchangeevent.DefaultSimplified = exchangeeventDescSimplified.Default.(bool)
	// exchangeeventDescTransfer is the schema descriptor for transfer field.
	exchangeeventDescTransfer := exchangeeventFields[10].Descriptor()
	// exchangeevent.DefaultTransfer holds the default value on creation for the transfer field.
	exchangeevent.DefaultTransfer = exchangeeventDescTransfer.Default.(bool)
	// exchangeeventDescDecision is the schema descriptor for decision field.
	exchangeeventDescDecision := exchangeeventFields[11].Descriptor()
	// exchangeevent.DefaultDecision holds the default value on creation for the decision field.
	exchangeevent.DefaultDecision = exchangeeventDescDecision.Default.(string)
	oraclerequesteventMixin := schema.OracleRequestEvent{}.Mixin()
	oraclerequesteventMixinFields0 := oraclerequesteventMixin[0].Fields()
	_ = oraclerequesteventMixinFields0
	oraclerequesteventFields := schema.OracleRequestEvent{}.Fields()
	_ = oraclerequesteventFields
	// oraclerequesteventDescTimestamp is the schema descriptor for timestamp field.
	oraclerequesteventDescTimestamp := oraclerequesteventMixinFields0[1].Descriptor()
	// oraclerequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	oraclerequestevent.DefaultTimestamp = oraclerequesteventDescTimestamp.Default.(func() time.Time)
	// oraclerequesteventDescProvider is the schema descriptor for provider field.
	oraclerequesteventDescProvider := oraclerequesteventFields[0].Descriptor()
	// oraclerequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	oraclerequestevent.ProviderValidator = oraclerequesteventDescProvider.Validators[0].(func(string) error)
	// oraclerequesteventDescModel is the schema descriptor for model field.
	oraclerequesteventDescModel := oraclerequesteventFields[1].Descriptor()
	// oraclerequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	oraclerequestevent.ModelValidator = oraclerequesteventDescModel.Validators[0].(func(string) error)
	// oraclerequesteventDescPurpose is the schema descriptor for purpose field.
	oraclerequesteventDescPurpose := oraclerequesteventFields[2].Descriptor()
	// oraclerequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	oraclerequestevent.PurposeValidator = oraclerequesteventDescPurpose.Validators[0].(func(string) error)
	// oraclerequesteventDescInputTokens is the schema descriptor for input_tokens field.
	oraclerequesteventDescInputTokens := oraclerequesteventFields[3].Descriptor()
	// oraclerequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	oraclerequestevent.DefaultInputTokens = oraclerequesteventDescInputTokens.Default.(int)
	// oraclerequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	oraclerequesteventDescOutputTokens := oraclerequesteventFields[4].Descriptor()
	// oraclerequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	oraclerequestevent.DefaultOutputTokens = oraclerequesteventDescOutputTokens.Default.(int)
	// oraclerequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	oraclerequesteventDescLatencyMs := oraclerequesteventFields[5].Descriptor()
	// oraclerequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	oraclerequestevent.DefaultLatencyMs = oraclerequesteventDescLatencyMs.Default.(int64)
	// oraclerequesteventDescSuccess is the schema descriptor for success field.
	oraclerequesteventDescSuccess := oraclerequesteventFields[6].Descriptor()
	// oraclerequestevent.DefaultSuccess holds the default value on creation for the success field.
	oraclerequestevent.DefaultSuccess = oraclerequesteventDescSuccess.Default.(bool)
	// oraclerequesteventDescRequestBody is the schema descriptor for request_body field.
	oraclerequesteventDescRequestBody := oraclerequesteventFields[7].Descriptor()
	// oraclerequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	oraclerequestevent.DefaultRequestBody = oraclerequesteventDescRequestBody.Default.(string)
	// oraclerequesteventDescResponseBody is the schema descriptor for response_body field.
	oraclerequesteventDescResponseBody := oraclerequesteventFields[8].Descriptor()
	// oraclerequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	oraclerequestevent.DefaultResponseBody = oraclerequesteventDescResponseBody.Default.(string)
	// oraclerequesteventDescErrorMessage is the schema descriptor for error_message field.
	oraclerequesteventDescErrorMessage := oraclerequesteventFields[9].Descriptor()
	// oraclerequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	oraclerequestevent.DefaultErrorMessage = oraclerequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescTopicID is the schema descriptor for topic_id field.
	sessioneventDescTopicID := sessioneventFields[1].Descriptor()
	// sessionevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	sessionevent.TopicIDValidator = sessioneventDescTopicID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTotalExchanges is the schema descriptor for total_exchanges field.
	sessioneventDescTotalExchanges := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTotalExchanges holds the default value on creation for the total_exchanges field.
	sessionevent.DefaultTotalExchanges = sessioneventDescTotalExchanges.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
