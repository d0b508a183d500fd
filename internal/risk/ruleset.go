package risk

// RuleSet содержит настраиваемые пороги и списки правил оценки.
// Значения по умолчанию соответствуют продуктовым константам PayGuard;
// передача собственного RuleSet позволяет настраивать правила без
// пересборки сервиса
type RuleSet struct {
	// Пороги velocity: счетчик строго больше порога включает фактор
	IPVelocityThreshold   int64 // событий с одного IP за 5 минут
	IPVelocityWeight      int
	IPVelocityCap         int
	IPVelocityHighCount   int64 // строго больше => severity high
	CardVelocityThreshold int64 // событий с одного BIN за 5 минут
	CardVelocityWeight    int
	CardVelocityCap       int
	CardVelocityHighCount int64
	EmailVelocityThreshold int64 // событий с одного email за 15 минут
	EmailVelocityWeight    int
	EmailVelocityCap       int

	// Пороги суммы в минорных единицах валюты
	HighAmountCents      int64 // строго больше => фактор high_amount
	VeryHighAmountCents  int64 // строго больше => повышенный балл
	HighAmountScore      int
	VeryHighAmountScore  int
	RoundAmountStepCents int64 // кратность и нижняя граница для round_amount
	RoundAmountScore     int

	// Списки репутации
	HighRiskBINs           map[string]bool
	HighRiskBINScore       int
	HighRiskCountries      map[string]bool
	HighRiskCountryScore   int
	DisposableEmailDomains map[string]bool
	DisposableEmailScore   int
	SuspiciousEmailScore   int

	// Штрафы за отсутствие сигналов
	MissingIPScore     int
	MissingDeviceScore int

	// Пороги решения, выводимые из толерантности мерчанта
	DefaultTolerance float64
	ApproveFloor     float64
	ApproveFactor    float64
	ReviewFloor      float64
	ReviewFactor     float64
}

// DefaultRuleSet возвращает набор правил с продуктовыми значениями
func DefaultRuleSet() RuleSet {
	return RuleSet{
		IPVelocityThreshold:   3,
		IPVelocityWeight:      10,
		IPVelocityCap:         40,
		IPVelocityHighCount:   5,
		CardVelocityThreshold: 2,
		CardVelocityWeight:    15,
		CardVelocityCap:       45,
		CardVelocityHighCount: 4,
		EmailVelocityThreshold: 3,
		EmailVelocityWeight:    8,
		EmailVelocityCap:       30,

		HighAmountCents:      50000,  // > $500
		VeryHighAmountCents:  100000, // > $1000
		HighAmountScore:      10,
		VeryHighAmountScore:  20,
		RoundAmountStepCents: 10000,
		RoundAmountScore:     10,

		HighRiskBINs: map[string]bool{
			"400000": true,
			"411111": true,
			"555555": true,
		},
		HighRiskBINScore: 25,
		HighRiskCountries: map[string]bool{
			"NG": true, // Нигерия
			"RU": true, // Россия
			"CN": true, // Китай
			"VN": true, // Вьетнам
			"PH": true, // Филиппины
			"ID": true, // Индонезия
		},
		HighRiskCountryScore: 30,
		DisposableEmailDomains: map[string]bool{
			"mailinator.com":     true,
			"guerrillamail.com":  true,
			"10minutemail.com":   true,
			"tempmail.com":       true,
			"throwaway.email":    true,
			"temp-mail.org":      true,
			"yopmail.com":        true,
			"sharklasers.com":    true,
		},
		DisposableEmailScore: 35,
		SuspiciousEmailScore: 15,

		MissingIPScore:     10,
		MissingDeviceScore: 5,

		DefaultTolerance: 50,
		ApproveFloor:     20,
		ApproveFactor:    0.4,
		ReviewFloor:      50,
		ReviewFactor:     0.8,
	}
}
