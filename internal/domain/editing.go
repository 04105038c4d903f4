package domain

// EditOverlay is the single-slot edit state layered over the committed list.
// At most one prompt is in edit mode at a time; starting a new edit displaces
// the previous one. The overlay is local only and lost on restart.
type EditOverlay struct {
	id     PromptID
	draft  string
	active bool
}

// Start enters edit mode for id, seeding the draft from the committed text.
func (o *EditOverlay) Start(id PromptID, committed string) {
	o.id = id
	o.draft = committed
	o.active = true
}

func (o *EditOverlay) SetDraft(text string) {
	if o.active {
		o.draft = text
	}
}

func (o *EditOverlay) Cancel() {
	*o = EditOverlay{}
}

// Editing returns the prompt currently in edit mode and its draft, if any.
func (o *EditOverlay) Editing() (PromptID, string, bool) {
	return o.id, o.draft, o.active
}

func (o *EditOverlay) IsEditing(id PromptID) bool {
	return o.active && o.id == id
}
