package domain

// LanguageID identifies a spoken language.
type LanguageID uint32

const (
	LangUniversal        LanguageID = 0
	LangOrcish           LanguageID = 1
	LangDarnassian       LanguageID = 2
	LangTaurahe          LanguageID = 3
	LangDwarvish         LanguageID = 6
	LangCommon           LanguageID = 7
	LangDemonic          LanguageID = 8
	LangTitan            LanguageID = 9
	LangThalassian       LanguageID = 10
	LangDraconic         LanguageID = 11
	LangKalimag          LanguageID = 12
	LangGnomish          LanguageID = 13
	LangTroll            LanguageID = 14
	LangGutterspeak      LanguageID = 33
	LangDraenei          LanguageID = 35
	LangZombie           LanguageID = 36
	LangGnomishBinary    LanguageID = 37
	LangGoblinBinary     LanguageID = 38
	LangWorgen           LanguageID = 39
	LangGoblin           LanguageID = 40
	LangPandarenNeutral  LanguageID = 42
	LangPandarenAlliance LanguageID = 43
	LangPandarenHorde    LanguageID = 44

	// LangAddon marks opaque inter-client payloads.
	LangAddon LanguageID = 0xFFFFFFFF
)

// LanguageDescriptor is static reference data. A zero SkillID means anyone may speak it.
type LanguageDescriptor struct {
	ID      LanguageID
	SkillID uint32
}

// RequiresSkill reports whether speaking the language needs a learned skill.
func (d LanguageDescriptor) RequiresSkill() bool {
	return d.SkillID != 0
}

// LanguageTable maps language ids to their descriptors.
type LanguageTable map[LanguageID]LanguageDescriptor

// Lookup returns the descriptor for id.
func (t LanguageTable) Lookup(id LanguageID) (LanguageDescriptor, bool) {
	d, ok := t[id]
	return d, ok
}

// DefaultLanguages returns the stock language table.
func DefaultLanguages() LanguageTable {
	descriptors := []LanguageDescriptor{
		{LangAddon, 0},
		{LangUniversal, 0},
		{LangOrcish, 109},
		{LangDarnassian, 113},
		{LangTaurahe, 115},
		{LangDwarvish, 111},
		{LangCommon, 98},
		{LangDemonic, 139},
		{LangTitan, 140},
		{LangThalassian, 137},
		{LangDraconic, 138},
		{LangKalimag, 0},
		{LangGnomish, 313},
		{LangTroll, 315},
		{LangGutterspeak, 673},
		{LangDraenei, 759},
		{LangZombie, 0},
		{LangGnomishBinary, 0},
		{LangGoblinBinary, 0},
		{LangWorgen, 791},
		{LangGoblin, 792},
		{LangPandarenNeutral, 905},
		{LangPandarenAlliance, 906},
		{LangPandarenHorde, 907},
	}
	table := make(LanguageTable, len(descriptors))
	for _, d := range descriptors {
		table[d.ID] = d
	}
	return table
}
