package server

// indexHTML is the upload page served at /. It posts resumes, a job
// description, and the required keywords to /process and renders the ranked
// results inline.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Shortlist</title>
    <style>
        body { font-family: sans-serif; max-width: 42rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
        label { display: block; margin: 1rem 0 0.25rem; font-weight: 600; }
        input[type="text"] { width: 100%; padding: 0.4rem; }
        button { margin-top: 1.25rem; padding: 0.5rem 1.5rem; }
        li { background: #f5f5f5; border-radius: 4px; padding: 0.75rem; margin: 0.5rem 0; list-style: none; }
        #error { color: #b00020; margin-top: 1rem; }
    </style>
</head>
<body>
    <h1>Shortlist</h1>
    <label for="resumes">Resumes (PDF, DOCX, XLSX, or plain text)</label>
    <input type="file" id="resumes" multiple accept=".pdf,.docx,.xlsx,.txt,.md">
    <label for="jd">Job description</label>
    <input type="file" id="jd" accept=".txt,.md,.pdf,.docx">
    <label for="keywords">Required keywords (comma separated)</label>
    <input type="text" id="keywords" placeholder="e.g. python, sql, kubernetes">
    <button id="submit" disabled>Score resumes</button>
    <div id="error"></div>
    <ul id="results"></ul>

    <script>
        const resumes = document.getElementById('resumes');
        const jd = document.getElementById('jd');
        const submit = document.getElementById('submit');
        const results = document.getElementById('results');
        const errorBox = document.getElementById('error');

        function refresh() {
            submit.disabled = !(resumes.files.length > 0 && jd.files.length > 0);
        }
        resumes.addEventListener('change', refresh);
        jd.addEventListener('change', refresh);

        submit.addEventListener('click', async () => {
            submit.disabled = true;
            submit.textContent = 'Scoring…';
            results.innerHTML = '';
            errorBox.textContent = '';

            const form = new FormData();
            for (const f of resumes.files) form.append('resumes', f);
            form.append('jobDescription', jd.files[0]);
            form.append('mandatoryFields', document.getElementById('keywords').value);

            try {
                const resp = await fetch('/process', { method: 'POST', body: form });
                const data = await resp.json();
                if (!resp.ok) throw new Error(data.error || 'scoring failed');
                for (const rec of data) {
                    const li = document.createElement('li');
                    const kw = rec.matched_keywords.length > 0
                        ? rec.matched_keywords.join(', ') : 'none';
                    li.innerHTML = '<strong>' + rec.filename + '</strong>: ' +
                        rec.score.toFixed(2) + '% match<br>' +
                        'Keywords: ' + kw + ' (' + rec.matched_keywords_count + '/' + rec.total_keywords + ')<br>' +
                        'Phones: ' + (rec.phone_numbers.join(', ') || 'none') + '<br>' +
                        'Emails: ' + (rec.emails.join(', ') || 'none');
                    results.appendChild(li);
                }
            } catch (err) {
                errorBox.textContent = err.message;
            } finally {
                submit.disabled = false;
                submit.textContent = 'Score resumes';
            }
        });
    </script>
</body>
</html>
`
