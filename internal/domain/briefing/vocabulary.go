package briefing

// ChecklistGroup identifies one of the three fixed checklist groups on the
// KY form.
type ChecklistGroup string

const (
	GroupHazards   ChecklistGroup = "hazards"
	GroupAvoidance ChecklistGroup = "avoidance"
	GroupFinish    ChecklistGroup = "finish"
)

// The closed vocabularies below mirror the printed KY record sheet. The
// labels are the literal cell texts of the template; checkbox rendering
// matches on them exactly, so they must never be reworded independently
// of the template asset.

// HazardLabels are the selectable hazard items.
var HazardLabels = []string{
	"感電・漏電事故",
	"火災",
	"停電事故",
	"漏電事故",
	"墜落・落下事故",
	"酸欠事故",
	"騒音、振動、異臭、埃等のクレーム",
	"その他(危険ポイント)",
}

// AvoidanceLabels are the selectable hazard-avoidance measures.
var AvoidanceLabels = []string{
	"活線作業の禁止",
	"不良工具の使用禁止",
	"保護具使用",
	"ヘルメット着用",
	"安全帯着用",
	"安全柵取付",
	"消火器設置",
	"作業時間帯調整",
	"その他(危険回避)",
}

// FinishLabels are the selectable completion checks.
var FinishLabels = []string{
	"電源・スイッチ・バルブ等の復旧",
	"火気・危険物作業実施後の安全確認",
	"不要品の搬出及び清掃",
	"借用品の返却",
	"部屋の施錠",
	"その他(終了確認)",
}

var vocabularies = map[ChecklistGroup][]string{
	GroupHazards:   HazardLabels,
	GroupAvoidance: AvoidanceLabels,
	GroupFinish:    FinishLabels,
}

// Vocabulary returns the closed label set for a group
func Vocabulary(group ChecklistGroup) []string {
	return vocabularies[group]
}

// IsKnownLabel reports whether label belongs to the group's vocabulary
func IsKnownLabel(group ChecklistGroup, label string) bool {
	for _, known := range vocabularies[group] {
		if known == label {
			return true
		}
	}
	return false
}
