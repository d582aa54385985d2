package cli

import (
	"strings"

	"cpptutor/internal/domain"
)

// Locale holds the surface text for one interface language. Command tokens
// are translated to domain.Command here and nowhere else.
type Locale struct {
	SelectLanguage string
	SelectLevel    string
	SelectMode     string
	Welcome        string
	GoalPrompt     string
	PressEnter     string

	CommandPrompt  string
	CommandsHint   string
	ReviewHint     string
	InvalidCommand string
	Goodbye        string

	LessonHeader  string
	SampleCode    string
	MiniChallenge string
	Solution      string
	RelatedTopic  string
	RelatedFrom   string

	AtFirstLesson  string
	AtLastLesson   string
	BookmarkSaved  string
	BookmarkJumped string
	NoBookmark     string

	NotePrompt string
	NoteSaved  string
	NotesTitle string
	NoNotes    string

	XPEarned     string
	GoalProgress string
	GoalReached  string

	Reminder      string
	BackupCreated string

	WeeklyTitle    string
	WeeklyLessons  string
	WeeklyXP       string
	WeeklySessions string
	WeeklyAverage  string

	InstructorMode     string
	InstructorPassword string
	WrongPassword      string
	AccessGranted      string
	EditMenu           string
	EditContentPrompt  string
	ContentUpdated     string

	ImportPrompt  string
	ImportSuccess string
	ImportFailed  string

	ChallengePrompt string
	Correct         string
	Incorrect       string
	ChallengeSkip   string
	ChallengeBack   string
	ChallengeExit   string
	ChallengeSolved string
	LevelCompleted  string
	LevelAnswered   string
	LevelXP         string
	LevelGreat      string
	QuizStart       string
	QuizTitle       string
	QuizQuestion    string
	QuizAnswer      string
	QuizCorrect     string
	QuizIncorrect   string
	QuizScore       string
	QuizTop         string
	QuizMid         string
	QuizLow         string
	QuizRetryPrompt string
	QuizRetryToken  string
	LevelNextPrompt string
	LevelRetryToken string
	LevelNextToken  string
	CurriculumDone  string
	SaveFailed      string

	commands map[string]domain.Command
}

// Parse maps a typed token to its canonical command. Unknown input is
// domain.CmdInvalid.
func (l *Locale) Parse(input string) domain.Command {
	if cmd, ok := l.commands[strings.TrimSpace(input)]; ok {
		return cmd
	}
	return domain.CmdInvalid
}

// LocaleFor falls back to English for an unset language.
func LocaleFor(lang domain.Language) *Locale {
	if lang == domain.Arabic {
		return Arabic
	}
	return English
}

var English = &Locale{
	SelectLanguage: "Select language / اختر اللغة:\n1) English\n2) العربية",
	SelectLevel:    "Select your current level:\n1) Beginner 👶\n2) Intermediate 🧑‍💻\n3) Advanced 👨‍🏫",
	SelectMode:     "Choose a mode:\n1) Training Mode\n2) Challenge Mode",
	Welcome:        "Hello! I'm your personal programming instructor.\nI'll guide you in learning C++ in your favorite language!\nLet's get started! 💻🚀",
	GoalPrompt:     "Set your daily lesson goal (default 3): ",
	PressEnter:     "Press Enter to continue...",

	CommandPrompt:  "Type a command (next, back, repeat, code, solution, exit, note, notes, bookmark, goto, mode, review, import): ",
	CommandsHint:   "[Commands: next, back, repeat, code, solution, exit, note, notes, bookmark, goto, mode, review, import]",
	ReviewHint:     "[review mode] Type next, back, repeat, exit to leave review",
	InvalidCommand: "Invalid command. Please try again.",
	Goodbye:        "Goodbye! Happy learning!",

	LessonHeader:  "--- Lesson %d/%d:",
	SampleCode:    "Sample Code:",
	MiniChallenge: "Mini Challenge:",
	Solution:      "Solution:",
	RelatedTopic:  "💡 Related Topic: ",
	RelatedFrom:   " from ",

	AtFirstLesson:  "You are at the first lesson.",
	AtLastLesson:   "You are at the last lesson.",
	BookmarkSaved:  "🔖 Bookmark saved at lesson %d",
	BookmarkJumped: "🔖 Jumped to bookmarked lesson %d",
	NoBookmark:     "❌ No bookmark set!",

	NotePrompt: "Enter your note for this lesson: ",
	NoteSaved:  "✅ Note saved successfully!",
	NotesTitle: "📝 Your Notes:",
	NoNotes:    "No notes found.",

	XPEarned:     "✅ You earned 10 XP! Total: %d",
	GoalProgress: "✅ You've completed %d/%d of your daily goal!",
	GoalReached:  "🎉 Daily goal achieved! You're crushing it!",

	Reminder:      "⏰ It's been %d days since your last session. Ready to continue?",
	BackupCreated: "🔁 Progress backup created successfully!",

	WeeklyTitle:    "📊 Weekly Statistics Summary",
	WeeklyLessons:  "✅ Total Lessons Completed: %d",
	WeeklyXP:       "🎯 Total XP: %d",
	WeeklySessions: "📅 Number of Sessions: %d",
	WeeklyAverage:  "📈 Average Lessons Per Session: %.2f",

	InstructorMode:     "👨‍🏫 Instructor Mode",
	InstructorPassword: "Enter instructor password: ",
	WrongPassword:      "❌ Incorrect password!",
	AccessGranted:      "✅ Access granted!",
	EditMenu:           "What would you like to edit?\n1) Explanation\n2) Code\n3) Challenge\n4) Solution\n5) Cancel",
	EditContentPrompt:  "Enter new content:",
	ContentUpdated:     "✅ Content updated!",

	ImportPrompt:  "Enter filename to import: ",
	ImportSuccess: "Lesson imported successfully!",
	ImportFailed:  "Failed to import lesson.",

	ChallengePrompt: "Type your answer (or type skip/back/exit): ",
	Correct:         "✅ Correct! You earned 10 XP! Total: %d",
	Incorrect:       "❌ Incorrect.",
	ChallengeSkip:   "skip",
	ChallengeBack:   "back",
	ChallengeExit:   "exit",
	ChallengeSolved: "You solved the last challenge of this level.",
	LevelCompleted:  "🎓 Level Completed: %s",
	LevelAnswered:   "✅ You answered %d/%d challenges",
	LevelXP:         "🎯 XP Earned: %d",
	LevelGreat:      "🏆 Great progress!",
	QuizStart:       "Press Enter to take the end-of-level quiz...",
	QuizTitle:       "===== End-of-Level Quiz =====",
	QuizQuestion:    "Q%d: %s",
	QuizAnswer:      "Your answer: ",
	QuizCorrect:     "Correct!",
	QuizIncorrect:   "Incorrect. Solution: %s",
	QuizScore:       "Final Score: %d/%d",
	QuizTop:         "Great job!",
	QuizMid:         "Good effort!",
	QuizLow:         "Keep practicing!",
	QuizRetryPrompt: "Type retry to retake the quiz, or press Enter to continue: ",
	QuizRetryToken:  "retry",
	LevelNextPrompt: "Type retry to repeat the level, or next to proceed: ",
	LevelRetryToken: "retry",
	LevelNextToken:  "next",
	CurriculumDone:  "🏁 You have finished every level. Well done!",
	SaveFailed:      "⚠️ Progress could not be saved.",

	commands: map[string]domain.Command{
		"next":     domain.CmdAdvance,
		"back":     domain.CmdRetreat,
		"repeat":   domain.CmdRepeat,
		"code":     domain.CmdShowCode,
		"solution": domain.CmdShowSolution,
		"note":     domain.CmdAddNote,
		"notes":    domain.CmdListNotes,
		"bookmark": domain.CmdSetBookmark,
		"goto":     domain.CmdJumpToBookmark,
		"review":   domain.CmdToggleReview,
		"mode":     domain.CmdEditContent,
		"import":   domain.CmdImportLesson,
		"exit":     domain.CmdQuit,
	},
}

var Arabic = &Locale{
	SelectLanguage: "اختر اللغة / Select language:\n1) English\n2) العربية",
	SelectLevel:    "اختر مستواك الحالي:\n1) مبتدئ 👶\n2) متوسط 🧑‍💻\n3) متقدم 👨‍🏫",
	SelectMode:     "اختر الوضع:\n1) وضع التدريب\n2) وضع التحدي",
	Welcome:        "أهلاً! أنا أستاذك الخاص في تعلم البرمجة.\nسأرشدك في تعلم ++C بلغتك المفضلة!\nهيا نبدأ! 💻🚀",
	GoalPrompt:     "حدد هدفك اليومي من الدروس (الافتراضي 3): ",
	PressEnter:     "اضغط Enter للمتابعة...",

	CommandPrompt:  "اكتب أمر (التالي، السابق، إعادة، الكود، الحل، خروج، ملاحظة، ملاحظات، علامة، اذهب، وضع، مراجعة، استيراد): ",
	CommandsHint:   "[الأوامر: التالي، السابق، إعادة، الكود، الحل، خروج، ملاحظة، ملاحظات، علامة، اذهب، وضع، مراجعة، استيراد]",
	ReviewHint:     "[وضع المراجعة] اكتب التالي، السابق، إعادة، خروج لمغادرة المراجعة",
	InvalidCommand: "أمر غير صالح. حاول مرة أخرى.",
	Goodbye:        "وداعاً! تعلم سعيد!",

	LessonHeader:  "--- الدرس %d/%d:",
	SampleCode:    "مثال الكود:",
	MiniChallenge: "تحدي صغير:",
	Solution:      "الحل:",
	RelatedTopic:  "💡 موضوع ذو صلة: ",
	RelatedFrom:   " من ",

	AtFirstLesson:  "أنت في أول درس.",
	AtLastLesson:   "أنت في آخر درس.",
	BookmarkSaved:  "🔖 تم حفظ العلامة في الدرس %d",
	BookmarkJumped: "🔖 انتقل إلى الدرس المحدد %d",
	NoBookmark:     "❌ لا توجد علامة محفوظة!",

	NotePrompt: "أدخل ملاحظتك لهذا الدرس: ",
	NoteSaved:  "✅ تم حفظ الملاحظة بنجاح!",
	NotesTitle: "📝 ملاحظاتك:",
	NoNotes:    "لا توجد ملاحظات.",

	XPEarned:     "✅ لقد حصلت على 10 نقطة خبرة! المجموع: %d",
	GoalProgress: "✅ أنجزت %d/%d من هدفك اليومي!",
	GoalReached:  "🎉 لقد حققت هدفك اليومي! أنت رائع!",

	Reminder:      "⏰ مر %d أيام منذ جلستك الأخيرة. مستعد للمتابعة؟",
	BackupCreated: "🔁 تم إنشاء نسخة احتياطية بنجاح!",

	WeeklyTitle:    "📊 ملخص الإحصائيات الأسبوعية",
	WeeklyLessons:  "✅ مجموع الدروس المكتملة: %d",
	WeeklyXP:       "🎯 مجموع نقاط الخبرة: %d",
	WeeklySessions: "📅 عدد الجلسات: %d",
	WeeklyAverage:  "📈 متوسط الدروس لكل جلسة: %.2f",

	InstructorMode:     "👨‍🏫 وضع المحاضر",
	InstructorPassword: "أدخل كلمة مرور المحاضر: ",
	WrongPassword:      "❌ كلمة المرور غير صحيحة!",
	AccessGranted:      "✅ تم السماح بالدخول!",
	EditMenu:           "ماذا تريد أن تعدل؟\n1) الشرح\n2) الكود\n3) التحدي\n4) الحل\n5) إلغاء",
	EditContentPrompt:  "أدخل المحتوى الجديد:",
	ContentUpdated:     "✅ تم تحديث المحتوى!",

	ImportPrompt:  "أدخل اسم الملف للاستيراد: ",
	ImportSuccess: "تم استيراد الدرس بنجاح!",
	ImportFailed:  "فشل استيراد الدرس.",

	ChallengePrompt: "اكتب إجابتك (أو اكتب تخطي/السابق/خروج): ",
	Correct:         "✅ إجابة صحيحة! لقد حصلت على 10 نقطة خبرة! المجموع: %d",
	Incorrect:       "❌ إجابة خاطئة.",
	ChallengeSkip:   "تخطي",
	ChallengeBack:   "السابق",
	ChallengeExit:   "خروج",
	ChallengeSolved: "لقد حللت آخر تحدٍ في هذا المستوى.",
	LevelCompleted:  "🎓 اكتمل المستوى: %s",
	LevelAnswered:   "✅ أجبت على %d/%d من التحديات",
	LevelXP:         "🎯 نقاط الخبرة: %d",
	LevelGreat:      "🏆 تقدم رائع!",
	QuizStart:       "اضغط Enter لبدء اختبار نهاية المستوى...",
	QuizTitle:       "===== اختبار نهاية المستوى =====",
	QuizQuestion:    "س%d: %s",
	QuizAnswer:      "إجابتك: ",
	QuizCorrect:     "صحيح!",
	QuizIncorrect:   "خطأ. الحل: %s",
	QuizScore:       "النتيجة النهائية: %d/%d",
	QuizTop:         "عمل رائع!",
	QuizMid:         "مجهود جيد!",
	QuizLow:         "استمر في التدريب!",
	QuizRetryPrompt: "اكتب إعادة لإعادة الاختبار، أو اضغط Enter للمتابعة: ",
	QuizRetryToken:  "إعادة",
	LevelNextPrompt: "اكتب إعادة لتكرار المستوى، أو التالي للمتابعة: ",
	LevelRetryToken: "إعادة",
	LevelNextToken:  "التالي",
	CurriculumDone:  "🏁 لقد أنهيت جميع المستويات. أحسنت!",
	SaveFailed:      "⚠️ تعذر حفظ التقدم.",

	commands: map[string]domain.Command{
		"التالي":  domain.CmdAdvance,
		"السابق":  domain.CmdRetreat,
		"إعادة":   domain.CmdRepeat,
		"الكود":   domain.CmdShowCode,
		"الحل":    domain.CmdShowSolution,
		"ملاحظة":  domain.CmdAddNote,
		"ملاحظات": domain.CmdListNotes,
		"علامة":   domain.CmdSetBookmark,
		"اذهب":    domain.CmdJumpToBookmark,
		"مراجعة":  domain.CmdToggleReview,
		"وضع":     domain.CmdEditContent,
		"استيراد": domain.CmdImportLesson,
		"خروج":    domain.CmdQuit,
	},
}
