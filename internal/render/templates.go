package render

// The two print layouts, kept as fixed templates. The visual structure
// mirrors the paper forms the clinic used before.

const contractHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Contrato de Tratamento</title>
<style>
body { font-family: Georgia, serif; margin: 40px; color: #222; }
h1 { text-align: center; font-size: 20px; }
.section { margin-top: 24px; }
.label { font-weight: bold; }
.signature { margin-top: 80px; text-align: center; }
.signature hr { width: 60%; }
</style>
</head>
<body>
<h1>Contrato de Prestação de Serviços Odontológicos</h1>
<div class="section">
<p><span class="label">Paciente:</span> {{.PatientName}}</p>
<p><span class="label">CPF:</span> {{.PatientTaxID}}</p>
</div>
<div class="section">
<p class="label">Descrição do tratamento:</p>
<p>{{multiline .Description}}</p>
<p class="label">Valor Total: {{brl .TotalValue}}</p>
</div>
<div class="section">
<p>Data: {{brdate .Date}}</p>
</div>
<div class="signature">
<hr>
<p>Assinatura do paciente ou responsável</p>
</div>
</body>
</html>
`

const questionnaireHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Ficha de Anamnese</title>
<style>
body { font-family: Arial, sans-serif; margin: 32px; color: #222; font-size: 13px; }
h1 { text-align: center; font-size: 18px; }
h2 { font-size: 14px; border-bottom: 1px solid #999; padding-bottom: 4px; }
table { width: 100%; border-collapse: collapse; }
td { padding: 3px 6px; vertical-align: top; }
.q { width: 60%; }
.box { display: inline-block; width: 18px; border: 1px solid #333; text-align: center; }
.notes { border: 1px solid #999; min-height: 80px; padding: 6px; }
</style>
</head>
<body>
<h1>Ficha de Anamnese</h1>
<h2>Identificação</h2>
<table>
<tr><td>Nome: {{.Name}}</td><td>CPF: {{.TaxID}}</td></tr>
<tr><td>Nascimento: {{brdate .BirthDate}}</td><td>E-mail: {{.Email}}</td></tr>
<tr><td>Endereço: {{.Address}}</td><td>CEP: {{.PostalCode}}</td></tr>
<tr><td>Fone: {{.Phone}}</td><td>Emergência: {{.EmergencyPhone}} ({{.EmergencyName}})</td></tr>
</table>
<h2>Histórico de Saúde</h2>
<table>
<tr><td class="q">Está em tratamento médico?</td><td>Sim <span class="box">{{mark .UnderMedicalTreatment}}</span></td><td>Qual: {{.UnderMedicalTreatmentNote}}</td></tr>
<tr><td class="q">Está tomando algum medicamento?</td><td>Sim <span class="box">{{mark .TakingMedication}}</span></td><td>Qual: {{.TakingMedicationNote}}</td></tr>
<tr><td class="q">Possui alergia ou doença?</td><td>Sim <span class="box">{{mark .HasAllergy}}</span></td><td>Qual: {{.HasAllergyNote}}</td></tr>
<tr><td class="q">É diabético?</td><td>Sim <span class="box">{{mark .Diabetic}}</span></td><td></td></tr>
<tr><td class="q">Possui doença do coração?</td><td>Sim <span class="box">{{mark .HeartDisease}}</span></td><td></td></tr>
<tr><td class="q">É hipertenso?</td><td>Sim <span class="box">{{mark .Hypertensive}}</span></td><td></td></tr>
<tr><td class="q">É hemofílico?</td><td>Sim <span class="box">{{mark .Hemophiliac}}</span></td><td></td></tr>
<tr><td class="q">Os pés incham?</td><td>Sim <span class="box">{{mark .SwollenFeet}}</span></td><td></td></tr>
<tr><td class="q">Tem tosse persistente?</td><td>Sim <span class="box">{{mark .PersistentCough}}</span></td><td></td></tr>
<tr><td class="q">Tem alergia a anestesia?</td><td>Sim <span class="box">{{mark .AnesthesiaAllergy}}</span></td><td>Qual: {{.AnesthesiaAllergyNote}}</td></tr>
<tr><td class="q">Já foi submetido a anestesia?</td><td>Sim <span class="box">{{mark .HadAnesthesia}}</span></td><td></td></tr>
<tr><td class="q">Já teve hemorragia?</td><td>Sim <span class="box">{{mark .HadHemorrhage}}</span></td><td></td></tr>
<tr><td class="q">Possui algum vício?</td><td>Sim <span class="box">{{mark .HasAddiction}}</span></td><td>Qual: {{.HasAddictionNote}}</td></tr>
<tr><td class="q">Está grávida?</td><td>Sim <span class="box">{{mark .Pregnant}}</span></td><td></td></tr>
<tr><td class="q">Sofre de epilepsia?</td><td>Sim <span class="box">{{mark .Epileptic}}</span></td><td></td></tr>
<tr><td class="q">Algo mais a declarar?</td><td>Sim <span class="box">{{mark .OtherRemarks}}</span></td><td>Qual: {{.OtherRemarksNote}}</td></tr>
</table>
<h2>Odontograma</h2>
<div class="notes">{{multiline .ToothChartNotes}}</div>
</body>
</html>
`
