// internal/keywords/tables.go
package keywords

// Table maps a metadata category to its canonical keywords, each with the
// path-token aliases that imply it. Pure data; the matching lives in
// extractor.go.
type Table map[string]map[string][]string

var seqtechKeywords = map[string][]string{
	"Illumina":         {"illumina", "ilum", "nextseq", "hiseq", "miseq", "novaseq"},
	"PacBio":           {"pacbio", "sequel", "smrt", "ccs", "clr"},
	"OxfordNanopore":   {"nanopore", "ont", "minion", "promethion", "ultralong"},
	"BGI":              {"bgi", "bgiseq"},
	"CompleteGenomics": {"completegenomics"},
	"Dovetail":         {"dovetail", "chicago", "hic"},
	"StrandSeq":        {"strandseq"},
	"10XGenomics":      {"10xgenomics", "chromium"},
	"Moleculo":         {"moleculo"},
	"IonTorrent":       {"iontorrent"},
}

var centerKeywords = map[string][]string{
	"MPG":                    {"mpg"},
	"CLCBIO":                 {"clcbio"},
	"PlatinumGenomes":        {"platinumgenomes"},
	"MtSinai":                {"mtsinai"},
	"Nebraska":               {"nebraska"},
	"OsloUniversityHospital": {"oslo"},
	"DNAnexus":               {"dnanexus"},
	"SevenBridges":           {"sevenbridges"},
	"Rutgers":                {"rutgers"},
	"BilkentUni":             {"bilkent"},
	"Baylor":                 {"baylor"},
	"10XGenomics":            {"10xgenomics"},
	"Broad":                  {"broad"},
	"Roche":                  {"roche", "bina"},
	"Bionano":                {"bionano"},
	"BU":                     {"bu"},
	"Cornell":                {"cornell"},
	"CSHL":                   {"cshl"},
	"NIST":                   {"nist"},
	"RealTimeGenomics":       {"rtg"},
	"Sentieon":               {"sentieon"},
	"CompleteGenomics":       {"completegenomics"},
	"MDAnderson":             {"mdanderson"},
	"Leicester":              {"leicester"},
	"MSSM":                   {"mssm"},
	"Stanford":               {"stanford"},
	"PacBio":                 {"pacbio"},
	"NHGRI":                  {"nhgri"},
	"NCBI":                   {"ncbi"},
	"SpiralGenomics":         {"spiral"},
}

// GIAB reference-material identifiers.
var sampleKeywords = map[string][]string{
	"HG001": {"hg001", "na12878"},
	"HG002": {"hg002", "na24385"},
	"HG003": {"hg003", "na24149"},
	"HG004": {"hg004", "na24143"},
	"HG005": {"hg005", "na24631"},
	"HG006": {"hg006", "na24694"},
	"HG007": {"hg007", "na24695"},
}

var trioKeywords = map[string][]string{
	"AshkenazimTrio": {"ashkenazimtrio", "ashkenazim"},
	"ChineseTrio":    {"chinesetrio"},
}

var refGenomeKeywords = map[string][]string{
	"GRCh38": {"grch38", "hg38"},
	"GRCh37": {"grch37", "hs37d5", "hg19"},
	"CHM13":  {"chm13"},
}

var alignerKeywords = map[string][]string{
	"bwa":      {"bwa", "bwamem"},
	"bowtie2":  {"bowtie2"},
	"novalign": {"novalign"},
	"minimap2": {"minimap2"},
	"ngmlr":    {"ngmlr"},
	"pbmm2":    {"pbmm2"},
}

var variantCallerKeywords = map[string][]string{
	"VarScan":     {"varscan"},
	"Mutect2":     {"mutect2", "mutect"},
	"Strelka2":    {"strelka2", "strelka"},
	"deepvariant": {"deepvariant"},
	"pbsv":        {"pbsv"},
	"GATK":        {"gatk", "gatk4", "haplotypecaller", "gatk_hc"},
	"tardis":      {"tardis"},
	"mrCaNaVar":   {"mrcanavar"},
	"sniffles":    {"sniffles"},
	"rtg":         {"rtg"},
	"tnscope":     {"tnscope"},
	"LongRanger":  {"longranger"},
	"Supernova":   {"supernova"},
	"MetaSV":      {"metasv"},
	"fermikit":    {"fermikit"},
	"manta":       {"manta"},
	"snpeff":      {"snpeff"},
	"svaba":       {"svaba"},
	"DISCOVAR":    {"discovar"},
	"freebayes":   {"freebayes"},
	"PBHoney":     {"pbhoney"},
	"breakseq":    {"breakseq"},
	"cnvnator":    {"cnvnator"},
	"lumpy":       {"lumpy"},
	"PALMER":      {"palmer"},
	"Parliament":  {"parliament"},
	"scalpel":     {"scalpel"},
	"CGAtools":    {"cgatools"},
	"delly":       {"delly"},
	"TVC":         {"tvc"},
	"GangSTR":     {"gangstr"},
	"HipSTR":      {"hipstr"},
}

// FASTQ filenames carry technology/center/sample provenance only.
func FASTQ() Table {
	return Table{
		"sequencing_technology": seqtechKeywords,
		"center":                centerKeywords,
		"trio":                  trioKeywords,
		"sample_id":             sampleKeywords,
	}
}

// BAM adds the reference genome and aligner.
func BAM() Table {
	return Table{
		"sequencing_technology": seqtechKeywords,
		"center":                centerKeywords,
		"trio":                  trioKeywords,
		"sample_id":             sampleKeywords,
		"ref_genome":            refGenomeKeywords,
		"aligner":               alignerKeywords,
	}
}

// VCF adds the reference genome and variant caller.
func VCF() Table {
	return Table{
		"sequencing_technology": seqtechKeywords,
		"center":                centerKeywords,
		"trio":                  trioKeywords,
		"sample_id":             sampleKeywords,
		"ref_genome":            refGenomeKeywords,
		"variant_caller":        variantCallerKeywords,
	}
}
