// ABOUTME: Sentinel errors for CRM engine operations
// ABOUTME: Validation failures leave state untouched and are matched with errors.Is
package crm

import "errors"

var (
	ErrNameRequired     = errors.New("name is required")
	ErrPhoneRequired    = errors.New("whatsapp number is required")
	ErrLeadNotFound     = errors.New("lead not found")
	ErrStageNotFound    = errors.New("stage not found")
	ErrLastStage        = errors.New("the funnel must keep at least one stage")
	ErrEmptyDescription = errors.New("interaction description is required")
	ErrEmptyTemplate    = errors.New("template title and content are required")
	ErrTemplateNotFound = errors.New("template not found")
)
