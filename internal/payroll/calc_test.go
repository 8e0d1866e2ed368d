package payroll

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coaltools/internal/paycomponent"
	"coaltools/internal/workflow"
)

func int64Ptr(v int64) *int64 { return &v }

func flatEarning(nama string, nominal int64, taxable bool) paycomponent.PayComponent {
	return paycomponent.PayComponent{
		ID:      uuid.New(),
		Nama:    nama,
		Kind:    paycomponent.KindEarning,
		Taxable: taxable,
		Method:  paycomponent.MethodFlat,
		Nominal: nominal,
		Aktif:   true,
	}
}

func percentOfGross(nama string, kind paycomponent.Kind, rate float64, taxable bool) paycomponent.PayComponent {
	return paycomponent.PayComponent{
		ID:      uuid.New(),
		Nama:    nama,
		Kind:    kind,
		Taxable: taxable,
		Method:  paycomponent.MethodPercentage,
		Basis:   paycomponent.BasisGrossPay,
		Rate:    decimal.NewFromFloat(rate),
		Aktif:   true,
	}
}

func findComponent(t *testing.T, line PayrollLine, nama string) LineComponent {
	t.Helper()
	for _, c := range line.Components {
		if c.Nama == nama {
			return c
		}
	}
	t.Fatalf("component %q not found on line", nama)
	return LineComponent{}
}

func sumEarnings(line PayrollLine) int64 {
	var total int64
	for _, c := range line.Components {
		if c.Kind == paycomponent.KindEarning {
			total += c.Amount
		}
	}
	return total
}

func sumDeductionsAbs(line PayrollLine) int64 {
	var total int64
	for _, c := range line.Components {
		if c.Kind == paycomponent.KindDeduction {
			total += -c.Amount
		}
	}
	return total
}

// Skenario slip lengkap: gaji pokok flat, bonus persentase atas gross,
// potongan BPJS persentase atas gross, pajak 5% atas earning taxable.
func TestComputeLineFullSlip(t *testing.T) {
	catalog := []paycomponent.PayComponent{
		flatEarning("Gaji Pokok", 5_000_000, true),
		percentOfGross("Bonus", paycomponent.KindEarning, 10, true),
		percentOfGross("BPJS", paycomponent.KindDeduction, 4, false),
	}
	snapshot := EmployeeSnapshot{
		EmployeeID:   uuid.New(),
		EmployeeName: "Budi",
		TaxRate:      decimal.NewFromInt(5),
	}

	line := ComputeLine(snapshot, catalog)

	assert.Equal(t, int64(5_000_000), findComponent(t, line, "Gaji Pokok").Amount)
	assert.Equal(t, int64(500_000), findComponent(t, line, "Bonus").Amount)
	assert.Equal(t, int64(5_500_000), line.Gross)
	assert.Equal(t, int64(275_000), line.TaxAmount)
	assert.Equal(t, int64(-275_000), findComponent(t, line, ComponentPajak).Amount)
	assert.Equal(t, int64(-220_000), findComponent(t, line, "BPJS").Amount)
	assert.Equal(t, int64(5_005_000), line.Net)
	assert.False(t, line.NetAdjusted)
}

func TestComputeLineGrossEqualsSumOfEarnings(t *testing.T) {
	catalog := []paycomponent.PayComponent{
		flatEarning("Uang Makan", 500_000, false),
		{
			ID:     uuid.New(),
			Nama:   "Premi Hadir",
			Kind:   paycomponent.KindEarning,
			Method: paycomponent.MethodPerDay,
			Rate:   decimal.NewFromInt(15_000),
			Aktif:  true,
		},
		percentOfGross("Bonus Produksi", paycomponent.KindEarning, 7.5, true),
		percentOfGross("BPJS", paycomponent.KindDeduction, 4, false),
	}
	snapshot := EmployeeSnapshot{
		EmployeeID:   uuid.New(),
		EmployeeName: "Siti",
		DailyWage:    180_000,
		Workdays:     24,
		Kasbon:       250_000,
		TaxRate:      decimal.NewFromInt(5),
	}

	line := ComputeLine(snapshot, catalog)

	assert.Equal(t, sumEarnings(line), line.Gross)
	assert.Equal(t, sumDeductionsAbs(line)-line.TaxAmount, line.DeductionTotal)
	assert.Equal(t, line.Gross-line.TaxAmount-line.DeductionTotal, line.Net)
}

// Menukar urutan dua komponen persentase-atas-gross mengubah besaran
// masing-masing: running gross memang sensitif urutan katalog.
func TestComputeLineOrderSensitivity(t *testing.T) {
	base := flatEarning("Gaji Pokok", 1_000_000, true)
	bonusA := percentOfGross("Bonus A", paycomponent.KindEarning, 10, false)
	bonusB := percentOfGross("Bonus B", paycomponent.KindEarning, 20, false)
	snapshot := EmployeeSnapshot{EmployeeID: uuid.New(), EmployeeName: "Andi"}

	lineAB := ComputeLine(snapshot, []paycomponent.PayComponent{base, bonusA, bonusB})
	lineBA := ComputeLine(snapshot, []paycomponent.PayComponent{base, bonusB, bonusA})

	// A dulu: A = 100.000, B = 20% x 1.100.000 = 220.000
	assert.Equal(t, int64(100_000), findComponent(t, lineAB, "Bonus A").Amount)
	assert.Equal(t, int64(220_000), findComponent(t, lineAB, "Bonus B").Amount)

	// B dulu: B = 200.000, A = 10% x 1.200.000 = 120.000
	assert.Equal(t, int64(200_000), findComponent(t, lineBA, "Bonus B").Amount)
	assert.Equal(t, int64(120_000), findComponent(t, lineBA, "Bonus A").Amount)

	assert.NotEqual(t,
		findComponent(t, lineAB, "Bonus A").Amount,
		findComponent(t, lineBA, "Bonus A").Amount,
	)
}

func TestComputeLineCapNeverExceeded(t *testing.T) {
	capped := flatEarning("Tunjangan", 2_000_000, false)
	capped.CapMax = int64Ptr(300_000)

	line := ComputeLine(EmployeeSnapshot{EmployeeID: uuid.New()}, []paycomponent.PayComponent{capped})

	assert.Equal(t, int64(300_000), findComponent(t, line, "Tunjangan").Amount)
	assert.Equal(t, int64(300_000), line.Gross)
}

// Potongan nominal 2.000.000 dengan cap 300.000 pada gross 1.000.000
// tercatat persis 300.000, bukan 2.000.000.
func TestComputeLineCappedDeduction(t *testing.T) {
	deduction := paycomponent.PayComponent{
		ID:      uuid.New(),
		Nama:    "Potongan Koperasi",
		Kind:    paycomponent.KindDeduction,
		Method:  paycomponent.MethodFlat,
		Nominal: 2_000_000,
		CapMax:  int64Ptr(300_000),
		Aktif:   true,
	}
	catalog := []paycomponent.PayComponent{
		flatEarning("Gaji Pokok", 1_000_000, false),
		deduction,
	}

	line := ComputeLine(EmployeeSnapshot{EmployeeID: uuid.New()}, catalog)

	assert.Equal(t, int64(-300_000), findComponent(t, line, "Potongan Koperasi").Amount)
	assert.Equal(t, int64(700_000), line.Net)
}

func TestComputeLineIdempotent(t *testing.T) {
	catalog := []paycomponent.PayComponent{
		flatEarning("Gaji Pokok", 3_200_000, true),
		percentOfGross("Bonus", paycomponent.KindEarning, 12.5, true),
		percentOfGross("BPJS", paycomponent.KindDeduction, 4, false),
	}
	snapshot := EmployeeSnapshot{
		EmployeeID:    uuid.New(),
		EmployeeName:  "Rina",
		DailyWage:     150_000,
		Workdays:      26,
		OvertimeHours: decimal.NewFromFloat(7.5),
		OvertimeRate:  25_000,
		Kasbon:        400_000,
		TaxRate:       decimal.NewFromInt(5),
	}

	first := ComputeLine(snapshot, catalog)
	second := ComputeLine(snapshot, catalog)

	assert.Equal(t, first, second)
}

func TestComputeLineKasbonCappedAtGross(t *testing.T) {
	catalog := []paycomponent.PayComponent{flatEarning("Gaji Pokok", 1_000_000, false)}
	snapshot := EmployeeSnapshot{EmployeeID: uuid.New(), Kasbon: 2_500_000}

	line := ComputeLine(snapshot, catalog)

	assert.Equal(t, int64(-1_000_000), findComponent(t, line, ComponentKasbon).Amount)
	assert.Equal(t, int64(0), line.Net)
	assert.False(t, line.NetAdjusted)
}

// Saat pajak plus potongan melebihi gross, net dipatok nol dan diberi flag,
// tidak pernah negatif.
func TestComputeLineNetFlooredAtZero(t *testing.T) {
	deduction := paycomponent.PayComponent{
		ID:      uuid.New(),
		Nama:    "Potongan Seragam",
		Kind:    paycomponent.KindDeduction,
		Method:  paycomponent.MethodFlat,
		Nominal: 1_000_000,
		Aktif:   true,
	}
	catalog := []paycomponent.PayComponent{
		flatEarning("Gaji Pokok", 1_000_000, true),
		deduction,
	}
	snapshot := EmployeeSnapshot{EmployeeID: uuid.New(), TaxRate: decimal.NewFromInt(5)}

	line := ComputeLine(snapshot, catalog)

	assert.Equal(t, int64(1_000_000), line.Gross)
	assert.Equal(t, int64(50_000), line.TaxAmount)
	assert.Equal(t, int64(0), line.Net)
	assert.True(t, line.NetAdjusted)
}

func TestComputeLineBasePayFromContract(t *testing.T) {
	snapshot := EmployeeSnapshot{
		EmployeeID:    uuid.New(),
		EmployeeName:  "Joko",
		DailyWage:     200_000,
		Workdays:      25,
		OvertimeHours: decimal.NewFromInt(10),
		OvertimeRate:  20_000,
	}

	line := ComputeLine(snapshot, nil)

	assert.Equal(t, int64(5_000_000), findComponent(t, line, ComponentGajiPokok).Amount)
	assert.Equal(t, int64(200_000), findComponent(t, line, ComponentLembur).Amount)
	assert.Equal(t, int64(5_200_000), line.Gross)
}

func TestComputeLinePerDayAndBases(t *testing.T) {
	perDay := paycomponent.PayComponent{
		ID:     uuid.New(),
		Nama:   "Premi Hadir",
		Kind:   paycomponent.KindEarning,
		Method: paycomponent.MethodPerDay,
		Rate:   decimal.NewFromInt(15_000),
		Aktif:  true,
	}
	percentOfWage := paycomponent.PayComponent{
		ID:     uuid.New(),
		Nama:   "Tunjangan Harian",
		Kind:   paycomponent.KindEarning,
		Method: paycomponent.MethodPercentage,
		Basis:  paycomponent.BasisDailyWage,
		Rate:   decimal.NewFromInt(50),
		Aktif:  true,
	}

	snapshot := EmployeeSnapshot{EmployeeID: uuid.New(), DailyWage: 180_000, Workdays: 22}
	line := ComputeLine(snapshot, []paycomponent.PayComponent{perDay, percentOfWage})

	assert.Equal(t, int64(330_000), findComponent(t, line, "Premi Hadir").Amount)
	assert.Equal(t, int64(90_000), findComponent(t, line, "Tunjangan Harian").Amount)
}

func TestComputeLineFlatOverride(t *testing.T) {
	uangMakan := flatEarning("Uang Makan", 500_000, false)
	snapshot := EmployeeSnapshot{
		EmployeeID:    uuid.New(),
		FlatOverrides: map[uuid.UUID]int64{uangMakan.ID: 650_000},
	}

	line := ComputeLine(snapshot, []paycomponent.PayComponent{uangMakan})

	assert.Equal(t, int64(650_000), findComponent(t, line, "Uang Makan").Amount)
}

func TestBuildRun(t *testing.T) {
	catalog := []paycomponent.PayComponent{flatEarning("Gaji Pokok", 2_000_000, true)}
	snapshots := []EmployeeSnapshot{
		{EmployeeID: uuid.New(), EmployeeName: "Budi"},
		{EmployeeID: uuid.New(), EmployeeName: "Siti"},
		{EmployeeID: uuid.New(), EmployeeName: "Andi"},
	}
	awal := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	akhir := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	creator := uuid.New()

	run := BuildRun(awal, akhir, snapshots, catalog, creator)

	require.Len(t, run.Lines, 3)
	assert.Equal(t, workflow.StatusDraft, run.Status)
	assert.Equal(t, creator, run.CreatedBy)
	for i, snapshot := range snapshots {
		assert.Equal(t, snapshot.EmployeeName, run.Lines[i].EmployeeName)
		assert.Equal(t, i, run.Lines[i].Urutan)
	}
	assert.Equal(t, int64(6_000_000), run.TotalGross())
	assert.Equal(t, run.TotalGross(), run.TotalNet())
}

func TestComputeLineSelectedComponentsOnly(t *testing.T) {
	makan := flatEarning("Uang Makan", 500_000, true)
	bbm := flatEarning("Uang BBM", 300_000, true)
	catalog := []paycomponent.PayComponent{makan, bbm}

	line := ComputeLine(EmployeeSnapshot{
		EmployeeID:         uuid.New(),
		SelectedComponents: map[uuid.UUID]bool{makan.ID: true},
	}, catalog)

	assert.Equal(t, int64(500_000), line.Gross)
	findComponent(t, line, "Uang Makan")
	for _, c := range line.Components {
		assert.NotEqual(t, "Uang BBM", c.Nama)
	}
}

func TestComputeLineCustomComponents(t *testing.T) {
	catalog := []paycomponent.PayComponent{flatEarning("Gaji Pokok", 4_000_000, true)}

	line := ComputeLine(EmployeeSnapshot{
		EmployeeID: uuid.New(),
		TaxRate:    decimal.NewFromInt(5),
		CustomComponents: []CustomComponent{
			{Nama: "Bonus Lebaran", Kind: paycomponent.KindEarning, Taxable: true, Amount: 1_000_000},
			{Nama: "Denda APD", Kind: paycomponent.KindDeduction, Amount: 50_000},
		},
	}, catalog)

	assert.Equal(t, int64(5_000_000), line.Gross)
	assert.Equal(t, line.Gross, sumEarnings(line))
	assert.Equal(t, int64(250_000), line.TaxAmount)
	assert.Equal(t, int64(-50_000), findComponent(t, line, "Denda APD").Amount)
	assert.Equal(t, int64(4_700_000), line.Net)
	assert.False(t, line.NetAdjusted)
}
