package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coaltools/internal/paycomponent"
	"coaltools/internal/workflow"
)

// Nama komponen sintetis yang ditambahkan kalkulator sendiri, di luar katalog.
const (
	ComponentGajiPokok = "Gaji Pokok"
	ComponentLembur    = "Lembur"
	ComponentPajak     = "PPh"
	ComponentKasbon    = "Kasbon"
)

var hundred = decimal.NewFromInt(100)

// EmployeeSnapshot adalah input kalkulasi satu karyawan untuk satu periode.
// Semua nilai uang dalam rupiah utuh.
type EmployeeSnapshot struct {
	EmployeeID    uuid.UUID
	EmployeeName  string
	DailyWage     int64
	Workdays      int
	OvertimeHours decimal.Decimal
	OvertimeRate  int64
	Kasbon        int64
	// TaxRate dalam persen: 5 berarti 5% atas subset earning taxable.
	TaxRate decimal.Decimal
	// FlatOverrides mengganti nominal komponen FLAT tertentu untuk run ini
	// saja, keyed by component ID. Katalog sendiri tidak berubah.
	FlatOverrides map[uuid.UUID]int64
	// SelectedComponents membatasi katalog untuk karyawan ini: hanya komponen
	// dengan ID di set yang dievaluasi. Nil berarti seluruh katalog.
	SelectedComponents map[uuid.UUID]bool
	// CustomComponents adalah komponen sekali pakai khusus line ini, nominal
	// flat. Dievaluasi setelah komponen katalog pada partisi masing-masing.
	CustomComponents []CustomComponent
}

// CustomComponent adalah komponen ad-hoc di luar katalog, nominal sudah final.
type CustomComponent struct {
	Nama    string
	Kind    paycomponent.Kind
	Taxable bool
	Amount  int64
}

func (s EmployeeSnapshot) componentSelected(id uuid.UUID) bool {
	return s.SelectedComponents == nil || s.SelectedComponents[id]
}

// ComputeLine menerapkan katalog ke satu snapshot karyawan. Fungsi murni:
// tanpa side effect, input identik selalu menghasilkan output identik.
//
// Urutan evaluasi mengikuti urutan katalog persis seperti dikonfigurasi.
// Komponen PERCENTAGE dengan basis GROSS_PAY pada partisi earning memakai
// running gross (earning yang sudah dihitung sejauh ini), jadi menukar urutan
// dua komponen semacam itu mengubah hasil. Pada partisi deduction, GROSS_PAY
// berarti gross final.
//
// Katalog diasumsikan sudah tervalidasi saat disimpan; tidak ada jalur error.
func ComputeLine(snapshot EmployeeSnapshot, catalog []paycomponent.PayComponent) PayrollLine {
	line := PayrollLine{
		EmployeeID:    snapshot.EmployeeID,
		EmployeeName:  snapshot.EmployeeName,
		DailyWage:     snapshot.DailyWage,
		Workdays:      snapshot.Workdays,
		OvertimeHours: snapshot.OvertimeHours,
		OvertimeRate:  snapshot.OvertimeRate,
		Kasbon:        snapshot.Kasbon,
		TaxRate:       snapshot.TaxRate,
	}

	urutan := 0
	record := func(nama string, kind paycomponent.Kind, taxable bool, amount int64) {
		line.Components = append(line.Components, LineComponent{
			Nama:    nama,
			Kind:    kind,
			Taxable: taxable,
			Amount:  amount,
			Urutan:  urutan,
		})
		urutan++
	}

	var gross, taxableSum int64
	earn := func(nama string, taxable bool, amount int64) {
		if amount <= 0 {
			return
		}
		record(nama, paycomponent.KindEarning, taxable, amount)
		gross += amount
		if taxable {
			taxableSum += amount
		}
	}

	// Earning sintetis dievaluasi sebelum katalog supaya ikut masuk running
	// gross komponen persentase.
	if snapshot.DailyWage > 0 && snapshot.Workdays > 0 {
		earn(ComponentGajiPokok, true, snapshot.DailyWage*int64(snapshot.Workdays))
	}
	if snapshot.OvertimeHours.IsPositive() && snapshot.OvertimeRate > 0 {
		lembur := roundRupiah(snapshot.OvertimeHours.Mul(decimal.NewFromInt(snapshot.OvertimeRate)))
		earn(ComponentLembur, true, lembur)
	}

	for i := range catalog {
		c := &catalog[i]
		if c.Kind != paycomponent.KindEarning || !snapshot.componentSelected(c.ID) {
			continue
		}
		amount := applyCaps(componentAmount(c, snapshot, gross), c)
		earn(c.Nama, c.Taxable, amount)
	}

	for _, custom := range snapshot.CustomComponents {
		if custom.Kind != paycomponent.KindEarning {
			continue
		}
		earn(custom.Nama, custom.Taxable, custom.Amount)
	}

	line.Gross = gross

	if snapshot.TaxRate.IsPositive() && taxableSum > 0 {
		tax := roundRupiah(snapshot.TaxRate.Div(hundred).Mul(decimal.NewFromInt(taxableSum)))
		if tax > 0 {
			line.TaxAmount = tax
			record(ComponentPajak, paycomponent.KindDeduction, false, -tax)
		}
	}

	var deductions int64
	for i := range catalog {
		c := &catalog[i]
		if c.Kind != paycomponent.KindDeduction || !snapshot.componentSelected(c.ID) {
			continue
		}
		amount := applyCaps(componentAmount(c, snapshot, gross), c)
		if amount <= 0 {
			continue
		}
		record(c.Nama, paycomponent.KindDeduction, false, -amount)
		deductions += amount
	}

	for _, custom := range snapshot.CustomComponents {
		if custom.Kind != paycomponent.KindDeduction || custom.Amount <= 0 {
			continue
		}
		record(custom.Nama, paycomponent.KindDeduction, false, -custom.Amount)
		deductions += custom.Amount
	}

	// Kasbon dipotong eksplisit, maksimal sebesar gross: potongan tidak boleh
	// melebihi yang terutang.
	if snapshot.Kasbon > 0 && gross > 0 {
		kasbon := snapshot.Kasbon
		if kasbon > gross {
			kasbon = gross
		}
		record(ComponentKasbon, paycomponent.KindDeduction, false, -kasbon)
		deductions += kasbon
	}

	line.DeductionTotal = deductions

	net := gross - line.TaxAmount - deductions
	if net < 0 {
		// Kebijakan: net dipatok nol, tidak pernah negatif di slip. Flag
		// NetAdjusted memberi tahu reviewer bahwa potongan melebihi gross.
		net = 0
		line.NetAdjusted = true
	}
	line.Net = net

	return line
}

// componentAmount menghitung besaran mentah satu komponen terhadap snapshot.
// Untuk earning, gross adalah running gross; untuk deduction, gross final.
func componentAmount(c *paycomponent.PayComponent, snapshot EmployeeSnapshot, gross int64) int64 {
	switch c.Method {
	case paycomponent.MethodFlat:
		if override, ok := snapshot.FlatOverrides[c.ID]; ok {
			return override
		}
		return c.Nominal
	case paycomponent.MethodPerDay:
		return roundRupiah(c.Rate.Mul(decimal.NewFromInt(int64(snapshot.Workdays))))
	case paycomponent.MethodPercentage:
		return roundRupiah(c.Rate.Div(hundred).Mul(basisValue(c.Basis, snapshot, gross)))
	}
	return 0
}

func basisValue(b paycomponent.Basis, snapshot EmployeeSnapshot, gross int64) decimal.Decimal {
	switch b {
	case paycomponent.BasisDailyWage:
		return decimal.NewFromInt(snapshot.DailyWage)
	case paycomponent.BasisGrossPay:
		return decimal.NewFromInt(gross)
	case paycomponent.BasisWorkdays:
		return decimal.NewFromInt(int64(snapshot.Workdays))
	}
	return decimal.Zero
}

func applyCaps(amount int64, c *paycomponent.PayComponent) int64 {
	if c.CapMax != nil && amount > *c.CapMax {
		amount = *c.CapMax
	}
	if c.CapMin != nil && amount < *c.CapMin {
		amount = *c.CapMin
	}
	return amount
}

// roundRupiah membulatkan ke rupiah utuh, setengah menjauh dari nol.
func roundRupiah(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// BuildRun memanggil kalkulator sekali per snapshot dan mengumpulkan hasilnya
// menjadi run berstatus DRAFT. Urutan line mengikuti urutan snapshot.
func BuildRun(periodeAwal, periodeAkhir time.Time, snapshots []EmployeeSnapshot, catalog []paycomponent.PayComponent, createdBy uuid.UUID) PayrollRun {
	run := PayrollRun{
		PeriodeAwal:  periodeAwal,
		PeriodeAkhir: periodeAkhir,
		Status:       workflow.StatusDraft,
		CreatedBy:    createdBy,
	}
	for i, snapshot := range snapshots {
		line := ComputeLine(snapshot, catalog)
		line.Urutan = i
		run.Lines = append(run.Lines, line)
	}
	return run
}
