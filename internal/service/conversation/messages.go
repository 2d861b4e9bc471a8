package conversation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/surovp/tg-bot-feedback/internal/domain"
)

const (
	msgWelcome = "👋 Welcome to the feedback collection bot!\n\n" +
		"📋 How it works:\n" +
		"1. Enter your full name\n" +
		"2. Choose 'New Feedback' to start an entry\n" +
		"3. Enter the company name and your feedback\n" +
		"4. Confirm saving\n\n" +
		"✅ Feedback checklist:\n" +
		"- What did you like about the event?\n" +
		"- What could be improved?\n" +
		"- Your overall impressions"
	msgNamePrompt    = "Please enter your full name:"
	msgNameInvalid   = "Please enter your full name (for example: Ivan Petrov):"
	msgNoSession     = "Send /start to begin."
	msgMainMenu      = "Main menu:"
	menuPlaceholder  = "▼ Choose an action ▼"
	msgCompanyPrompt = "Enter the company name (optionally add the delegate's full name):"
	msgFeedbackAsk   = "Write your feedback:"
	msgFeedbackSaved = "✅ Feedback #%d saved. Choose an action:"
	msgNothingToEdit = "ℹ️ You have no saved feedback to edit."
	msgEditListHead  = "Choose the feedback to edit:\n%s\n\nEnter the feedback number:"
	msgNotANumber    = "⚠️ Please enter a number."
	msgBadNumber     = "⚠️ Invalid feedback number. Try again."
	msgCurrentText   = "Current feedback text:\n%s\n\nEnter the new text:"
	msgEditSaved     = "✅ Feedback updated!"
	msgEditLost      = "⚠️ The feedback being edited is no longer available."
	msgBackToMenu    = "Back to the main menu:"
	msgConfirmFinish = "Are you sure you want to finish collecting feedback? (Saved feedback: %d)"
	msgBatchSaved    = "✅ All %d feedback entries were saved to the spreadsheet!\nChoose your next action:"
	msgBatchFailed   = "❌ Saving failed. Your feedback is still kept in memory.\nChoose your next action:"
	msgNothingToSave = "ℹ️ Nothing to save.\nChoose your next action:"
	msgContinue      = "Continuing feedback collection. (Kept in memory: %d)"
)

// previewLen is the number of characters of feedback text shown in the
// edit list.
const previewLen = 30

func mainMenu(text string) domain.OutMessage {
	return domain.WithActions(text, menuPlaceholder,
		domain.ActionNewFeedback,
		domain.ActionEditFeedback,
		domain.ActionFinishCollection,
	)
}

func editList(entries []domain.FeedbackEntry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%d. %s - %s", i+1, e.CompanyInfo, preview(e.FeedbackText))
	}
	return fmt.Sprintf(msgEditListHead, strings.Join(lines, "\n"))
}

// preview cuts text to previewLen runes, marking the cut with "...".
func preview(text string) string {
	if utf8.RuneCountInString(text) <= previewLen {
		return text
	}
	return string([]rune(text)[:previewLen]) + "..."
}
